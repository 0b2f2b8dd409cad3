// Package csvexport renders a reconciliation record as a flat two-column
// summary CSV, one field per row, mirroring the result table operators review
// on screen.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"trimatch/internal/match"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{"Field", "Value"}

// Writer wraps csv.Writer for exporting reconciliation records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the two-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(header)
}

// WriteRecord writes the summary rows for one reconciliation record.
// Absent fields render as empty values, never as omitted rows, so every
// export has the same shape.
func (w *Writer) WriteRecord(rec *match.Record) error {
	for _, row := range SummaryRows(rec) {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// SummaryRows builds the fixed field/value rows shared by all export formats.
func SummaryRows(rec *match.Record) [][]string {
	rows := [][]string{
		{"Nomor Kontrak", ""},
		{"Tanggal Mulai Kontrak", ""},
		{"Tanggal Selesai Kontrak", ""},
		{"Jangka Waktu (hari)", ""},
		{"Nilai Kontrak", ""},
		{"Tanggal BA", ""},
		{"Status BA", ""},
		{"Tanggal Invoice", ""},
		{"Status Tanggal Invoice", ""},
		{"DPP", ""},
		{"PPN", ""},
		{"Total Invoice", ""},
		{"Status Nilai Invoice", ""},
	}

	if c := rec.Contract; c != nil {
		rows[0][1] = c.ContractNumber
		rows[1][1] = formatDate(c.StartDate)
		rows[2][1] = formatDate(c.EndDate)
		if c.DurationDays != nil {
			rows[3][1] = strconv.Itoa(*c.DurationDays)
		}
		rows[4][1] = formatMoney(c.Value)
	}

	if r := rec.CompletionReport; r != nil {
		rows[5][1] = formatDate(r.ReportDate)
	}
	rows[6][1] = string(rec.Summary.BAStatus)

	if inv := rec.Invoice; inv != nil {
		rows[7][1] = formatDate(inv.InvoiceDate)
		rows[9][1] = formatMoney(inv.TaxBase)
		rows[10][1] = formatMoney(inv.TaxAmount)
		rows[11][1] = formatMoney(inv.Total)
	}
	rows[8][1] = string(rec.Summary.InvoiceDateStatus)
	rows[12][1] = string(rec.Summary.InvoiceAmountStatus)

	return rows
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a session name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_session_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(sessionName, ext string) string {
	sanitized := SanitizeFilename(sessionName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}

