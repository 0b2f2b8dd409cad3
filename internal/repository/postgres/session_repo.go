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

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a new PostgreSQL-backed SessionRepository.
func NewSessionRepo(db *sqlx.DB) port.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *domain.ReconciliationSession) error {
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `INSERT INTO reconciliation_sessions
		(id, name, status, amount_tolerance_pct, ba_status, invoice_date_status,
		 invoice_amount_status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Status, s.AmountTolerancePct, s.BAStatus,
		s.InvoiceDateStatus, s.InvoiceAmountStatus, s.CreatedBy,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("sessionRepo.Create: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReconciliationSession, error) {
	var s domain.ReconciliationSession
	err := r.db.GetContext(ctx, &s, "SELECT * FROM reconciliation_sessions WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("sessionRepo.GetByID: %w", err)
	}
	return &s, nil
}

func (r *sessionRepo) List(ctx context.Context, offset, limit int) ([]domain.ReconciliationSession, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM reconciliation_sessions")
	if err != nil {
		return nil, 0, fmt.Errorf("sessionRepo.List count: %w", err)
	}

	var sessions []domain.ReconciliationSession
	err = r.db.SelectContext(ctx, &sessions,
		`SELECT * FROM reconciliation_sessions
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sessionRepo.List: %w", err)
	}
	return sessions, total, nil
}

func (r *sessionRepo) UpdateStatuses(ctx context.Context, s *domain.ReconciliationSession) error {
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE reconciliation_sessions
		 SET status = $1, ba_status = $2, invoice_date_status = $3,
		     invoice_amount_status = $4, updated_at = $5
		 WHERE id = $6`,
		s.Status, s.BAStatus, s.InvoiceDateStatus, s.InvoiceAmountStatus,
		s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("sessionRepo.UpdateStatuses: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM reconciliation_sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
