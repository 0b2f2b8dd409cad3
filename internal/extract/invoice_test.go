package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trimatch/internal/domain"
)

const invoiceText = `INVOICE
PT Maju Jaya
Tanggal Invoice: 5 Juni 2023
DPP: Rp 450.450.451
PPN: Rp 49.549.549
Total: Rp 500.000.000`

func TestExtractInvoice_FullDocument(t *testing.T) {
	inv := ExtractInvoice(Input{FullText: invoiceText, Page1Text: invoiceText})

	require.NotNil(t, inv.InvoiceDate)
	assert.Equal(t, date(2023, time.June, 5), *inv.InvoiceDate)

	require.NotNil(t, inv.TaxBase)
	assert.InDelta(t, 450450451, *inv.TaxBase, 0.01)

	require.NotNil(t, inv.TaxAmount)
	assert.InDelta(t, 49549549, *inv.TaxAmount, 0.01)

	require.NotNil(t, inv.Total)
	assert.InDelta(t, 500000000, *inv.Total, 0.01)

	assert.Equal(t, domain.StatusUnknown, inv.DateStatus)
	assert.Equal(t, domain.StatusUnknown, inv.AmountStatus)
}

func TestExtractInvoice_TotalGlobalFallback(t *testing.T) {
	full := `FAKTUR
Tanggal Faktur: 5 Juni 2023
tagihan sebesar Rp 12.345.678 harap dibayar`

	inv := ExtractInvoice(Input{FullText: full, Page1Text: full})

	require.NotNil(t, inv.Total)
	assert.InDelta(t, 12345678, *inv.Total, 0.01)
}

func TestExtractInvoice_SupplementaryFieldsOptional(t *testing.T) {
	full := `INVOICE
Tanggal Invoice: 5 Juni 2023
Total: Rp 500.000.000`

	inv := ExtractInvoice(Input{FullText: full, Page1Text: full})

	assert.Nil(t, inv.TaxBase)
	assert.Nil(t, inv.TaxAmount)
	require.NotNil(t, inv.Total)
	assert.InDelta(t, 500000000, *inv.Total, 0.01)
}

func TestExtractInvoice_EmptyInput(t *testing.T) {
	inv := ExtractInvoice(Input{})

	assert.Nil(t, inv.InvoiceDate)
	assert.Nil(t, inv.TaxBase)
	assert.Nil(t, inv.TaxAmount)
	assert.Nil(t, inv.Total)
}

func TestExtractInvoice_Idempotent(t *testing.T) {
	in := Input{FullText: invoiceText, Page1Text: invoiceText}
	assert.Equal(t, ExtractInvoice(in), ExtractInvoice(in))
}
