package extract

import (
	"time"

	"trimatch/internal/domain"
)

// CompletionReport is the structured record extracted from a berita acara.
// Status is derived by the matcher, never from the document itself.
type CompletionReport struct {
	ReportDate    *time.Time         `json:"report_date,omitempty"`
	ReportDateRaw string             `json:"report_date_raw,omitempty"`
	Status        domain.MatchStatus `json:"status"`
}

// ExtractCompletionReport pulls the report date out of already-acquired text.
func ExtractCompletionReport(in Input) *CompletionReport {
	in = normalizeInput(in)
	r := &CompletionReport{Status: domain.StatusUnknown}

	var strategies []strategy
	for _, label := range baDateLabels {
		strategies = append(strategies, page1First(labelDate(label)))
	}
	strategies = append(strategies, page1First(longFormDate))
	if raw := firstNonEmpty(in, strategies...); raw != "" {
		r.ReportDateRaw = raw
		r.ReportDate = ParseDate(raw)
	}

	return r
}
