package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"trimatch/internal/domain"
	"trimatch/internal/extract"
	"trimatch/internal/match"
	"trimatch/internal/port"
)

// CreateSessionInput is the DTO for session creation requests.
type CreateSessionInput struct {
	Name               string   `json:"name" binding:"required,min=1,max=255"`
	AmountTolerancePct *float64 `json:"amount_tolerance_pct" binding:"omitempty,gte=0,lte=100"`
	CreatedBy          string   `json:"-"`
}

// AttachDocumentInput identifies the uploaded file to extract into a session slot.
type AttachDocumentInput struct {
	SessionID uuid.UUID
	FileID    uuid.UUID
	Role      domain.DocumentRole
}

// SessionService defines the reconciliation session contract.
type SessionService interface {
	Create(ctx context.Context, input CreateSessionInput) (*domain.ReconciliationSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationSession, error)
	List(ctx context.Context, offset, limit int) ([]domain.ReconciliationSession, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AttachDocument(ctx context.Context, input AttachDocumentInput) (*domain.SessionDocument, *domain.ReconciliationSession, error)
	GetRecord(ctx context.Context, sessionID uuid.UUID) (*match.Record, error)
}

type sessionService struct {
	sessionRepo   port.SessionRepository
	docRepo       port.SessionDocumentRepository
	fileRepo      port.FileMetaRepository
	storage       port.ObjectStorage
	extractor     port.TextExtractor
	defaultTolPct float64
}

// NewSessionService creates a new SessionService implementation.
func NewSessionService(
	sessionRepo port.SessionRepository,
	docRepo port.SessionDocumentRepository,
	fileRepo port.FileMetaRepository,
	storage port.ObjectStorage,
	extractor port.TextExtractor,
	defaultTolerancePct float64,
) SessionService {
	if defaultTolerancePct <= 0 {
		defaultTolerancePct = match.DefaultTolerancePct
	}
	return &sessionService{
		sessionRepo:   sessionRepo,
		docRepo:       docRepo,
		fileRepo:      fileRepo,
		storage:       storage,
		extractor:     extractor,
		defaultTolPct: defaultTolerancePct,
	}
}

func (s *sessionService) Create(ctx context.Context, input CreateSessionInput) (*domain.ReconciliationSession, error) {
	tolerance := s.defaultTolPct
	if input.AmountTolerancePct != nil {
		tolerance = *input.AmountTolerancePct
	}
	if tolerance < 0 || tolerance > 100 {
		return nil, domain.ErrInvalidTolerance
	}

	session := &domain.ReconciliationSession{
		ID:                  uuid.New(),
		Name:                input.Name,
		Status:              domain.SessionStatusPending,
		AmountTolerancePct:  tolerance,
		BAStatus:            domain.StatusUnknown,
		InvoiceDateStatus:   domain.StatusUnknown,
		InvoiceAmountStatus: domain.StatusUnknown,
		CreatedBy:           input.CreatedBy,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationSession, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context, offset, limit int) ([]domain.ReconciliationSession, int, error) {
	return s.sessionRepo.List(ctx, offset, limit)
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.sessionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.docRepo.DeleteBySession(ctx, id); err != nil {
		return fmt.Errorf("deleting session documents: %w", err)
	}
	return s.sessionRepo.Delete(ctx, id)
}

// AttachDocument downloads the uploaded file, extracts its text and fields for
// the given role, stores the result in the session slot (replacing any earlier
// document in that slot) and re-evaluates the session's match statuses.
func (s *sessionService) AttachDocument(ctx context.Context, input AttachDocumentInput) (*domain.SessionDocument, *domain.ReconciliationSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, nil, err
	}

	meta, err := s.fileRepo.GetByID(ctx, input.FileID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.storage.Download(ctx, meta.S3Key)
	if err != nil {
		return nil, nil, fmt.Errorf("downloading file %s: %w", meta.ID, err)
	}

	text, err := s.extractor.Extract(ctx, data, meta.ContentType)
	if err != nil {
		return nil, nil, fmt.Errorf("extracting text from file %s: %w", meta.ID, err)
	}

	in := extract.Input{FullText: text.FullText, Page1Text: text.Page1Text}
	extracted, err := extractForRole(input.Role, in)
	if err != nil {
		return nil, nil, err
	}

	doc := &domain.SessionDocument{
		ID:          uuid.New(),
		SessionID:   session.ID,
		FileID:      meta.ID,
		Role:        input.Role,
		Extracted:   extracted,
		OCRUsed:     text.OCRUsed,
		PageCount:   text.PageCount,
		ExtractedAt: time.Now().UTC(),
	}
	if err := s.docRepo.Upsert(ctx, doc); err != nil {
		return nil, nil, fmt.Errorf("storing session document: %w", err)
	}

	log.Printf("sessionService.AttachDocument: session %s role %s file %s (ocr=%v, pages=%d)",
		session.ID, input.Role, meta.ID, text.OCRUsed, text.PageCount)

	updated, err := s.reevaluate(ctx, session)
	if err != nil {
		return nil, nil, err
	}
	return doc, updated, nil
}

// GetRecord assembles the merged reconciliation record for a session from its
// stored per-document extractions. Missing documents leave their fields nil
// and the dependent statuses UNKNOWN.
func (s *sessionService) GetRecord(ctx context.Context, sessionID uuid.UUID) (*match.Record, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	docs, err := s.docRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing session documents: %w", err)
	}

	contract, report, invoice, metaByRole, err := decodeDocuments(docs)
	if err != nil {
		return nil, err
	}

	record := match.BuildRecord(contract, report, invoice, session.AmountTolerancePct)
	record.Meta = metaByRole
	return record, nil
}

// reevaluate recomputes the three match statuses and the completeness status
// from whatever documents the session currently holds.
func (s *sessionService) reevaluate(ctx context.Context, session *domain.ReconciliationSession) (*domain.ReconciliationSession, error) {
	docs, err := s.docRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("listing session documents: %w", err)
	}

	contract, report, invoice, _, err := decodeDocuments(docs)
	if err != nil {
		return nil, err
	}

	summary := match.Evaluate(contract, report, invoice, session.AmountTolerancePct)
	session.BAStatus = summary.BAStatus
	session.InvoiceDateStatus = summary.InvoiceDateStatus
	session.InvoiceAmountStatus = summary.InvoiceAmountStatus

	switch len(docs) {
	case 0:
		session.Status = domain.SessionStatusPending
	case len(domain.AllRoles):
		session.Status = domain.SessionStatusComplete
	default:
		session.Status = domain.SessionStatusPartial
	}

	if err := s.sessionRepo.UpdateStatuses(ctx, session); err != nil {
		return nil, fmt.Errorf("updating session statuses: %w", err)
	}
	return session, nil
}

func extractForRole(role domain.DocumentRole, in extract.Input) (json.RawMessage, error) {
	var record any
	switch role {
	case domain.RoleContract:
		record = extract.ExtractContract(in)
	case domain.RoleCompletionReport:
		record = extract.ExtractCompletionReport(in)
	case domain.RoleInvoice:
		record = extract.ExtractInvoice(in)
	default:
		return nil, domain.ErrInvalidRole
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encoding extracted record: %w", err)
	}
	return data, nil
}

func decodeDocuments(docs []domain.SessionDocument) (*extract.Contract, *extract.CompletionReport, *extract.Invoice, map[domain.DocumentRole]match.DocumentMeta, error) {
	var (
		contract *extract.Contract
		report   *extract.CompletionReport
		invoice  *extract.Invoice
	)
	metaByRole := make(map[domain.DocumentRole]match.DocumentMeta, len(docs))

	for i := range docs {
		doc := &docs[i]
		metaByRole[doc.Role] = match.DocumentMeta{OCRUsed: doc.OCRUsed, PageCount: doc.PageCount}

		switch doc.Role {
		case domain.RoleContract:
			contract = &extract.Contract{}
			if err := json.Unmarshal(doc.Extracted, contract); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("decoding contract document %s: %w", doc.ID, err)
			}
		case domain.RoleCompletionReport:
			report = &extract.CompletionReport{}
			if err := json.Unmarshal(doc.Extracted, report); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("decoding completion report document %s: %w", doc.ID, err)
			}
		case domain.RoleInvoice:
			invoice = &extract.Invoice{}
			if err := json.Unmarshal(doc.Extracted, invoice); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("decoding invoice document %s: %w", doc.ID, err)
			}
		default:
			return nil, nil, nil, nil, errors.New("unknown document role " + string(doc.Role))
		}
	}
	return contract, report, invoice, metaByRole, nil
}
