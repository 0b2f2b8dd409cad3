package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyMarkerRe = regexp.MustCompile(`(?i)Rp\.?|IDR`)
	nonAmountCharRe  = regexp.MustCompile(`[^0-9,.]`)
)

// NormalizeAmount converts a raw currency fragment to a numeric value.
// Procurement documents mix Indonesian formatting (period thousands, comma
// decimal, a trailing ",-" meaning an even amount) with plain digit runs from
// noisy OCR, so the separator roles have to be inferred:
//
//   - exactly one comma alongside at least one period: periods are thousands
//     separators, the comma is the decimal point ("1.250,75" -> 1250.75);
//   - no comma but several periods: Indonesian grouping, drop the periods
//     ("500.000.000" -> 500000000);
//   - anything else: commas are thousands separators, periods stay decimal
//     points ("12,500,000" -> 12500000).
//
// Returns nil when nothing numeric remains or the residue does not parse.
func NormalizeAmount(raw string) *float64 {
	s := currencyMarkerRe.ReplaceAllString(raw, "")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",-")
	s = nonAmountCharRe.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}

	commas := strings.Count(s, ",")
	periods := strings.Count(s, ".")
	switch {
	case commas == 1 && periods >= 1:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case commas == 0 && periods > 1:
		s = strings.ReplaceAll(s, ".", "")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	if err != nil {
		return nil
	}
	return &v
}
