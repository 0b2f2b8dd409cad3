// Package match computes the three-way matching statuses from already
// extracted records. Everything here is pure and stateless: statuses are
// recomputed from scratch whenever an input changes, and identical inputs
// always yield identical outputs.
package match

import (
	"math"
	"time"

	"trimatch/internal/domain"
	"trimatch/internal/extract"
)

// DefaultTolerancePct is the amount-equality band applied when no tolerance is
// configured. Exact float equality is useless against OCR and rounding noise.
const DefaultTolerancePct = 0.5

// BAStatus reports whether the completion report falls inside the contract
// period, boundaries inclusive. UNKNOWN until all three dates are present.
func BAStatus(c *extract.Contract, r *extract.CompletionReport) domain.MatchStatus {
	if c == nil || r == nil || c.StartDate == nil || c.EndDate == nil || r.ReportDate == nil {
		return domain.StatusUnknown
	}
	report := dateOnly(*r.ReportDate)
	start := dateOnly(*c.StartDate)
	end := dateOnly(*c.EndDate)
	if !report.Before(start) && !report.After(end) {
		return domain.StatusMatch
	}
	return domain.StatusNotMatch
}

// InvoiceDateStatus reports whether the invoice was issued on or after the
// completion report date; an invoice must not predate completion.
func InvoiceDateStatus(r *extract.CompletionReport, inv *extract.Invoice) domain.MatchStatus {
	if r == nil || inv == nil || r.ReportDate == nil || inv.InvoiceDate == nil {
		return domain.StatusUnknown
	}
	if !dateOnly(*inv.InvoiceDate).Before(dateOnly(*r.ReportDate)) {
		return domain.StatusMatch
	}
	return domain.StatusNotMatch
}

// InvoiceAmountStatus compares the invoice total against the contract value
// within a percentage tolerance band.
func InvoiceAmountStatus(c *extract.Contract, inv *extract.Invoice, tolerancePct float64) domain.MatchStatus {
	if c == nil || inv == nil || c.Value == nil || inv.Total == nil {
		return domain.StatusUnknown
	}
	band := tolerancePct / 100 * math.Abs(*c.Value)
	if math.Abs(*inv.Total-*c.Value) <= band {
		return domain.StatusMatch
	}
	return domain.StatusNotMatch
}

// Summary bundles the three match statuses of one session.
type Summary struct {
	BAStatus            domain.MatchStatus `json:"ba_status"`
	InvoiceDateStatus   domain.MatchStatus `json:"invoice_date_status"`
	InvoiceAmountStatus domain.MatchStatus `json:"invoice_amount_status"`
}

// Evaluate computes all three statuses. Any nil record simply leaves the
// statuses depending on it at UNKNOWN.
func Evaluate(c *extract.Contract, r *extract.CompletionReport, inv *extract.Invoice, tolerancePct float64) Summary {
	return Summary{
		BAStatus:            BAStatus(c, r),
		InvoiceDateStatus:   InvoiceDateStatus(r, inv),
		InvoiceAmountStatus: InvoiceAmountStatus(c, inv, tolerancePct),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
