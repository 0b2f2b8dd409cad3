package extract

import "time"

// Contract is the structured record extracted from a contract document.
// Raw companions keep the matched substring for audit.
type Contract struct {
	ContractNumber string     `json:"contract_number,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	StartDateRaw   string     `json:"start_date_raw,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EndDateRaw     string     `json:"end_date_raw,omitempty"`
	DurationDays   *int       `json:"duration_days,omitempty"`
	Value          *float64   `json:"value,omitempty"`
	ValueRaw       string     `json:"value_raw,omitempty"`
	// PaymentTermsRaw carries the "Tata Cara Pembayaran" clause text verbatim.
	PaymentTermsRaw string `json:"payment_terms_raw,omitempty"`
}

// ExtractContract pulls the contract fields out of already-acquired text.
// Every field degrades to absence when its strategies find nothing; the
// function itself never fails.
func ExtractContract(in Input) *Contract {
	in = normalizeInput(in)
	c := &Contract{}

	c.ContractNumber = firstNonEmpty(in,
		page1First(contractNumberPatterns[0]),
		page1First(contractNumberPatterns[1]),
		page1First(contractNumberPatterns[2]),
		page1First(contractNumberFallback),
	)

	startStrategies := []strategy{anchored(signatureAnchor, longFormDate)}
	for _, label := range contractStartLabels {
		startStrategies = append(startStrategies, page1First(labelDate(label)))
	}
	startStrategies = append(startStrategies, page1First(longFormDate))
	if raw := firstNonEmpty(in, startStrategies...); raw != "" {
		c.StartDateRaw = raw
		c.StartDate = ParseDate(raw)
	}

	for _, p := range durationPatterns {
		if raw := global(p)(in); raw != "" {
			if n := atoi(raw); n > 0 {
				c.DurationDays = &n
				break
			}
		}
	}

	var endStrategies []strategy
	for _, label := range contractEndLabels {
		endStrategies = append(endStrategies, page1First(labelDate(label)))
	}
	if raw := firstNonEmpty(in, endStrategies...); raw != "" {
		c.EndDateRaw = raw
		c.EndDate = ParseDate(raw)
	}
	// The computed end date wins over an explicitly matched one: explicit end
	// dates in poor scans are the least reliable of the three inputs. The raw
	// matched text stays for audit.
	if c.StartDate != nil && c.DurationDays != nil {
		derived := c.StartDate.AddDate(0, 0, *c.DurationDays)
		c.EndDate = &derived
	}

	valueStrategies := []strategy{anchored(workCostAnchor, currencyNumber)}
	for _, label := range contractValueLabels {
		valueStrategies = append(valueStrategies, anchored(label, currencyNumber))
	}
	for _, label := range contractValueLabels {
		valueStrategies = append(valueStrategies, page1First(labelAmount(label)))
	}
	valueStrategies = append(valueStrategies, global(currencyNumber))
	if raw := firstNonEmpty(in, valueStrategies...); raw != "" {
		c.ValueRaw = raw
		c.Value = NormalizeAmount(raw)
	}

	c.PaymentTermsRaw = anchored(paymentTermsAnchor, clauseTail)(in)

	return c
}
