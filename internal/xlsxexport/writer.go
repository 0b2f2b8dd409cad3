// Package xlsxexport renders a reconciliation record as an XLSX workbook:
// the same summary rows as the CSV export plus a detail sheet with the raw
// matched substrings for audit.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"trimatch/internal/csvexport"
	"trimatch/internal/match"
)

const (
	summarySheet = "Ringkasan Hasil"
	detailSheet  = "Detail Ekstraksi"
)

// Export returns an XLSX workbook for the record as bytes.
func Export(rec *match.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("creating summary sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	if err := writeRows(f, summarySheet, append([][]string{{"Field", "Value"}}, csvexport.SummaryRows(rec)...)); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, fmt.Errorf("creating detail sheet: %w", err)
	}
	if err := writeRows(f, detailSheet, detailRows(rec)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("setting cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// detailRows lists the raw substrings each extracted field came from, so a
// reviewer can trace a status back to the document text.
func detailRows(rec *match.Record) [][]string {
	rows := [][]string{{"Document", "Field", "Raw Text"}}

	if c := rec.Contract; c != nil {
		rows = append(rows,
			[]string{"Kontrak", "Nomor Kontrak", c.ContractNumber},
			[]string{"Kontrak", "Tanggal Mulai", c.StartDateRaw},
			[]string{"Kontrak", "Tanggal Selesai", c.EndDateRaw},
			[]string{"Kontrak", "Nilai Pekerjaan", c.ValueRaw},
			[]string{"Kontrak", "Tata Cara Pembayaran", c.PaymentTermsRaw},
		)
	}
	if r := rec.CompletionReport; r != nil {
		rows = append(rows, []string{"Berita Acara", "Tanggal BA", r.ReportDateRaw})
	}
	if inv := rec.Invoice; inv != nil {
		rows = append(rows,
			[]string{"Invoice", "Tanggal Invoice", inv.InvoiceDateRaw},
			[]string{"Invoice", "DPP", inv.TaxBaseRaw},
			[]string{"Invoice", "PPN", inv.TaxAmountRaw},
			[]string{"Invoice", "Total", inv.TotalRaw},
		)
	}
	return rows
}
