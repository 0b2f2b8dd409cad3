package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames maps Indonesian and English month names and their common
// abbreviations to calendar months. Scanned documents mix both languages.
var monthNames = map[string]time.Month{
	"januari": time.January, "january": time.January, "jan": time.January,
	"februari": time.February, "february": time.February, "feb": time.February, "peb": time.February, "pebruari": time.February,
	"maret": time.March, "march": time.March, "mar": time.March, "mrt": time.March,
	"april": time.April, "apr": time.April,
	"mei": time.May, "may": time.May,
	"juni": time.June, "june": time.June, "jun": time.June,
	"juli": time.July, "july": time.July, "jul": time.July,
	"agustus": time.August, "august": time.August, "aug": time.August, "agu": time.August, "ags": time.August, "agt": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"oktober": time.October, "october": time.October, "okt": time.October, "oct": time.October,
	"november": time.November, "nov": time.November, "nopember": time.November,
	"desember": time.December, "december": time.December, "des": time.December, "dec": time.December,
}

var (
	longDateRe    = regexp.MustCompile(`(?i)\b(\d{1,2})\s+([A-Za-z]+)\.?,?\s+(\d{2,4})\b`)
	isoDateRe     = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})\b`)
)

// ParseDate finds and parses the first calendar date in text. It accepts
// Indonesian or English month names (full or abbreviated), ISO dates, and
// numeric day-first D/M/Y forms, tolerating surrounding words. Returns nil
// when no parseable date is present. Two-digit years follow the usual century
// inference: 70-99 become 19xx, 00-69 become 20xx.
func ParseDate(text string) *time.Time {
	if text == "" {
		return nil
	}

	for _, m := range longDateRe.FindAllStringSubmatch(text, -1) {
		day, _ := strconv.Atoi(m[1])
		month, ok := lookupMonth(m[2])
		if !ok {
			continue
		}
		year := expandYear(atoi(m[3]))
		if t, ok := makeDate(year, month, day); ok {
			return t
		}
	}

	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		if t, ok := makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3])); ok {
			return t
		}
	}

	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		day, month, year := atoi(m[1]), atoi(m[2]), expandYear(atoi(m[3]))
		if t, ok := makeDate(year, time.Month(month), day); ok {
			return t
		}
	}

	return nil
}

func lookupMonth(name string) (time.Month, bool) {
	key := strings.ToLower(strings.TrimSuffix(name, "."))
	if m, ok := monthNames[key]; ok {
		return m, true
	}
	// OCR often garbles word endings; fall back to the three-letter stem.
	if len(key) > 3 {
		if m, ok := monthNames[key[:3]]; ok {
			return m, true
		}
	}
	return 0, false
}

func expandYear(y int) int {
	if y >= 100 {
		return y
	}
	if y >= 70 {
		return 1900 + y
	}
	return 2000 + y
}

// makeDate builds a calendar date (midnight UTC) and rejects values that
// time.Date would silently normalize, such as 31 February.
func makeDate(year int, month time.Month, day int) (*time.Time, bool) {
	if year < 1900 || year > 2200 || month < time.January || month > time.December || day < 1 || day > 31 {
		return nil, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return nil, false
	}
	return &t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
