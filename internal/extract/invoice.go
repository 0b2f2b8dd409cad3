package extract

import (
	"time"

	"trimatch/internal/domain"
)

// Invoice is the structured record extracted from an invoice document.
// DateStatus and AmountStatus are derived by the matcher.
type Invoice struct {
	InvoiceDate    *time.Time         `json:"invoice_date,omitempty"`
	InvoiceDateRaw string             `json:"invoice_date_raw,omitempty"`
	TaxBase        *float64           `json:"tax_base_amount,omitempty"`
	TaxBaseRaw     string             `json:"tax_base_amount_raw,omitempty"`
	TaxAmount      *float64           `json:"tax_amount,omitempty"`
	TaxAmountRaw   string             `json:"tax_amount_raw,omitempty"`
	Total          *float64           `json:"total_amount,omitempty"`
	TotalRaw       string             `json:"total_amount_raw,omitempty"`
	DateStatus     domain.MatchStatus `json:"date_status"`
	AmountStatus   domain.MatchStatus `json:"amount_status"`
}

// ExtractInvoice pulls the invoice fields out of already-acquired text.
// DPP and PPN are supplementary: labeled search only, no generic fallback,
// since nothing downstream validates them.
func ExtractInvoice(in Input) *Invoice {
	in = normalizeInput(in)
	inv := &Invoice{DateStatus: domain.StatusUnknown, AmountStatus: domain.StatusUnknown}

	var dateStrategies []strategy
	for _, label := range invoiceDateLabels {
		dateStrategies = append(dateStrategies, page1First(labelDate(label)))
	}
	dateStrategies = append(dateStrategies, page1First(longFormDate))
	if raw := firstNonEmpty(in, dateStrategies...); raw != "" {
		inv.InvoiceDateRaw = raw
		inv.InvoiceDate = ParseDate(raw)
	}

	for _, label := range taxBaseLabels {
		if raw := global(labelAmount(label))(in); raw != "" {
			inv.TaxBaseRaw = raw
			inv.TaxBase = NormalizeAmount(raw)
			break
		}
	}
	for _, label := range taxAmountLabels {
		if raw := global(labelAmount(label))(in); raw != "" {
			inv.TaxAmountRaw = raw
			inv.TaxAmount = NormalizeAmount(raw)
			break
		}
	}

	var totalStrategies []strategy
	for _, label := range invoiceTotalLabels {
		totalStrategies = append(totalStrategies, page1First(labelAmount(label)))
	}
	totalStrategies = append(totalStrategies, global(currencyNumber))
	if raw := firstNonEmpty(in, totalStrategies...); raw != "" {
		inv.TotalRaw = raw
		inv.Total = NormalizeAmount(raw)
	}

	return inv
}
