package port

import (
	"context"

	"github.com/google/uuid"

	"trimatch/internal/domain"
)

// SessionRepository persists reconciliation sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.ReconciliationSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationSession, error)
	List(ctx context.Context, offset, limit int) ([]domain.ReconciliationSession, int, error)
	UpdateStatuses(ctx context.Context, s *domain.ReconciliationSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionDocumentRepository persists the extracted documents attached to sessions.
type SessionDocumentRepository interface {
	Upsert(ctx context.Context, d *domain.SessionDocument) error
	GetByRole(ctx context.Context, sessionID uuid.UUID, role domain.DocumentRole) (*domain.SessionDocument, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionDocument, error)
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) error
}

// FileMetaRepository persists uploaded file metadata.
type FileMetaRepository interface {
	Create(ctx context.Context, f *domain.FileMeta) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FileMeta, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error
}
