package extract

import (
	"regexp"
	"strings"
)

// Pattern vocabulary shared by the three document extractors. Labels are the
// Indonesian headings these documents actually carry, with English variants
// where bilingual contracts use them. Labels are plain text; phrase turns
// them into regex fragments, and anchored quotes them itself.

// dateFragment grabs the run of text after a date label; ParseDate picks the
// actual date out of the fragment, so trailing words do no harm.
const dateFragment = `([\d\w][\d\w ,./-]{0,60})`

// longFormDate matches a written-out date in either language. Month names are
// matched by stem so OCR-garbled endings still hit.
const longFormDate = `(?i)\b(\d{1,2}\s+(?:Jan|Feb|Peb|Mar|Mrt|Apr|Mei|May|Jun|Jul|Agu|Ags|Agt|Aug|Sep|Okt|Oct|Nov|Nop|Des|Dec)[a-z]*\.?\s+\d{4})\b`

// currencyNumber captures the digit run after a rupiah marker.
const currencyNumber = `(?i)(?:Rp|IDR)\s*\.?\s*([\d][\d.,]*\d|\d)`

// phrase turns a plain-text label into a regex fragment: metacharacters are
// escaped and any whitespace run between words is tolerated.
func phrase(label string) string {
	return strings.Join(strings.Fields(regexp.QuoteMeta(label)), `\s+`)
}

func labelDate(label string) string {
	return `(?i)` + phrase(label) + `\s*[:.]?\s*` + dateFragment
}

func labelAmount(label string) string {
	return `(?i)` + phrase(label) + `\s*[:.]?\s*` + currencyNumber
}

var contractNumberPatterns = []string{
	`(?i)Nomor\s+Kontrak\s*[:.]?\s*([A-Za-z0-9][A-Za-z0-9./-]+)`,
	`(?i)No\.?\s*Kontrak\s*[:.]?\s*([A-Za-z0-9][A-Za-z0-9./-]+)`,
	`(?i)Contract\s+(?:No|Number)\.?\s*[:.]?\s*([A-Za-z0-9][A-Za-z0-9./-]+)`,
}

// contractNumberFallback is the generic long-identifier shape: uppercase or
// numeric segments joined by slashes, dots or dashes. Less precise, last resort.
const contractNumberFallback = `\b([A-Z0-9]{2,}(?:[./-][A-Z0-9]+){2,})\b`

// signatureAnchor marks the clause stating when the contract was signed.
const signatureAnchor = "ditandatangani"

var contractStartLabels = []string{"Tanggal Mulai", "Mulai", "Commencement Date"}
var contractEndLabels = []string{"Tanggal Selesai", "Berakhir", "Tanggal Berakhir", "Completion Date"}

var durationPatterns = []string{
	`(?i)\b(\d{1,4})\s*(?:\([^)]{0,80}\)\s*)?hari\s+(?:kalender|kerja)\b`,
	`(?i)jangka\s+waktu[^0-9]{0,40}(\d{1,4})\s*(?:\([^)]{0,80}\)\s*)?hari\b`,
	`(?i)\b(\d{1,4})\s+(?:calendar|working)\s+days?\b`,
}

// workCostAnchor heads the clause carrying the contract's monetary value.
const workCostAnchor = "Biaya Pelaksanaan Pekerjaan"

var contractValueLabels = []string{
	"Total Biaya", "Nilai Pekerjaan", "Nilai Kontrak", "Nilai", "Total Cost", "Work Value",
}

// paymentTermsAnchor heads the payment terms clause. The clause body is kept
// raw for audit, never parsed further.
const paymentTermsAnchor = "Tata Cara Pembayaran"

// clauseTail captures the clause text following an anchor heading.
const clauseTail = `[:.]?\s*(.{1,400})`

var baDateLabels = []string{
	"Tanggal BA", "Tanggal Berita Acara", "Tanggal",
}

var invoiceDateLabels = []string{
	"Tanggal Invoice", "Tanggal Faktur", "Invoice Date", "Tanggal",
}

var taxBaseLabels = []string{"DPP", "Dasar Pengenaan Pajak"}
var taxAmountLabels = []string{"PPN", "P.P.N"}

var invoiceTotalLabels = []string{
	"Total Invoice", "Amount Due", "Total", "Jumlah",
}
