package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReconciliationSession groups one contract, one completion report (BA) and one
// invoice, together with the match statuses computed across them. A session is
// re-evaluated whenever any of its documents changes; the evaluation itself is
// pure, so re-runs with identical inputs yield identical statuses.
type ReconciliationSession struct {
	ID                  uuid.UUID     `db:"id" json:"id"`
	Name                string        `db:"name" json:"name"`
	Status              SessionStatus `db:"status" json:"status"`
	AmountTolerancePct  float64       `db:"amount_tolerance_pct" json:"amount_tolerance_pct"`
	BAStatus            MatchStatus   `db:"ba_status" json:"ba_status"`
	InvoiceDateStatus   MatchStatus   `db:"invoice_date_status" json:"invoice_date_status"`
	InvoiceAmountStatus MatchStatus   `db:"invoice_amount_status" json:"invoice_amount_status"`
	CreatedBy           string        `db:"created_by" json:"created_by"`
	CreatedAt           time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time     `db:"updated_at" json:"updated_at"`
}

// SessionDocument is one extracted document attached to a session. Extracted
// holds the role-specific structured record (extract.Contract, extract.
// CompletionReport or extract.Invoice) as JSON, raw matched substrings included
// for audit.
type SessionDocument struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	SessionID   uuid.UUID       `db:"session_id" json:"session_id"`
	FileID      uuid.UUID       `db:"file_id" json:"file_id"`
	Role        DocumentRole    `db:"role" json:"role"`
	Extracted   json.RawMessage `db:"extracted" json:"extracted"`
	OCRUsed     bool            `db:"ocr_used" json:"ocr_used"`
	PageCount   int             `db:"page_count" json:"page_count"`
	ExtractedAt time.Time       `db:"extracted_at" json:"extracted_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// FileMeta stores metadata about an uploaded file.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
