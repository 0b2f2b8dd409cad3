package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trimatch/internal/domain"
	"trimatch/internal/port"
)

type sessionDocumentRepo struct {
	db *sqlx.DB
}

// NewSessionDocumentRepo creates a new PostgreSQL-backed SessionDocumentRepository.
func NewSessionDocumentRepo(db *sqlx.DB) port.SessionDocumentRepository {
	return &sessionDocumentRepo{db: db}
}

// Upsert inserts the document, replacing the existing one for the same
// session and role. Re-uploading a contract overwrites the earlier contract;
// a session holds at most one document per role.
func (r *sessionDocumentRepo) Upsert(ctx context.Context, d *domain.SessionDocument) error {
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	query := `INSERT INTO session_documents
		(id, session_id, file_id, role, extracted, ocr_used, page_count,
		 extracted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (session_id, role) DO UPDATE SET
		 file_id = EXCLUDED.file_id,
		 extracted = EXCLUDED.extracted,
		 ocr_used = EXCLUDED.ocr_used,
		 page_count = EXCLUDED.page_count,
		 extracted_at = EXCLUDED.extracted_at,
		 updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.SessionID, d.FileID, d.Role, d.Extracted, d.OCRUsed,
		d.PageCount, d.ExtractedAt, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionDocumentRepo.Upsert: %w", err)
	}
	return nil
}

func (r *sessionDocumentRepo) GetByRole(ctx context.Context, sessionID uuid.UUID, role domain.DocumentRole) (*domain.SessionDocument, error) {
	var d domain.SessionDocument
	err := r.db.GetContext(ctx, &d,
		"SELECT * FROM session_documents WHERE session_id = $1 AND role = $2",
		sessionID, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sessionDocumentRepo.GetByRole: %w", err)
	}
	return &d, nil
}

func (r *sessionDocumentRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.SessionDocument, error) {
	var docs []domain.SessionDocument
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM session_documents WHERE session_id = $1 ORDER BY role",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("sessionDocumentRepo.ListBySession: %w", err)
	}
	return docs, nil
}

func (r *sessionDocumentRepo) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM session_documents WHERE session_id = $1", sessionID)
	if err != nil {
		return fmt.Errorf("sessionDocumentRepo.DeleteBySession: %w", err)
	}
	return nil
}
