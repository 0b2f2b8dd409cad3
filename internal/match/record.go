package match

import (
	"trimatch/internal/domain"
	"trimatch/internal/extract"
)

// DocumentMeta records how the text for one document was acquired.
type DocumentMeta struct {
	OCRUsed   bool `json:"ocr_used"`
	PageCount int  `json:"page_count"`
}

// Record is the assembled reconciliation record for one session: the three
// extracted documents with their derived statuses stamped in, the match
// summary, and per-document acquisition metadata.
type Record struct {
	Contract         *extract.Contract                    `json:"contract,omitempty"`
	CompletionReport *extract.CompletionReport            `json:"completion_report,omitempty"`
	Invoice          *extract.Invoice                     `json:"invoice,omitempty"`
	Summary          Summary                              `json:"summary"`
	Meta             map[domain.DocumentRole]DocumentMeta `json:"meta,omitempty"`
}

// BuildRecord merges the three extraction results and the matcher outputs into
// one record. Missing documents are tolerated; their statuses stay UNKNOWN.
// The input records are modified in place (statuses stamped), matching how the
// per-document views were shown alongside the merged record originally.
func BuildRecord(c *extract.Contract, r *extract.CompletionReport, inv *extract.Invoice, tolerancePct float64) *Record {
	summary := Evaluate(c, r, inv, tolerancePct)
	if r != nil {
		r.Status = summary.BAStatus
	}
	if inv != nil {
		inv.DateStatus = summary.InvoiceDateStatus
		inv.AmountStatus = summary.InvoiceAmountStatus
	}
	return &Record{
		Contract:         c,
		CompletionReport: r,
		Invoice:          inv,
		Summary:          summary,
	}
}
