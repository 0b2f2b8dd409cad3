// Command reconcile runs the three-way match offline against local files:
// one contract, one completion report (berita acara) and one invoice.
// Usage: go run ./cmd/reconcile -contract k.pdf -ba ba.pdf -invoice inv.pdf
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"trimatch/internal/csvexport"
	"trimatch/internal/domain"
	"trimatch/internal/extract"
	"trimatch/internal/match"
	"trimatch/internal/ocr/noop"
	"trimatch/internal/textextract"
	"trimatch/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		contractPath = flag.String("contract", "", "path to the contract document")
		baPath       = flag.String("ba", "", "path to the completion report (berita acara)")
		invoicePath  = flag.String("invoice", "", "path to the invoice document")
		tolerance    = flag.Float64("tolerance", match.DefaultTolerancePct, "amount tolerance in percent of the contract value")
		format       = flag.String("format", "json", "output format: json, csv or xlsx")
		output       = flag.String("o", "", "output file (default stdout; required for xlsx)")
	)
	flag.Parse()

	if *tolerance < 0 || *tolerance > 100 {
		return domain.ErrInvalidTolerance
	}

	extractor := textextract.New(noop.NewRecognizer(), textextract.Options{Language: "ind+eng"})
	ctx := context.Background()

	var (
		contract *extract.Contract
		report   *extract.CompletionReport
		invoice  *extract.Invoice
	)

	if *contractPath != "" {
		in, err := readDocument(ctx, extractor, *contractPath)
		if err != nil {
			return err
		}
		contract = extract.ExtractContract(in)
	}
	if *baPath != "" {
		in, err := readDocument(ctx, extractor, *baPath)
		if err != nil {
			return err
		}
		report = extract.ExtractCompletionReport(in)
	}
	if *invoicePath != "" {
		in, err := readDocument(ctx, extractor, *invoicePath)
		if err != nil {
			return err
		}
		invoice = extract.ExtractInvoice(in)
	}

	if contract == nil && report == nil && invoice == nil {
		flag.Usage()
		return fmt.Errorf("at least one of -contract, -ba, -invoice is required")
	}

	record := match.BuildRecord(contract, report, invoice, *tolerance)

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)

	case "csv":
		if _, err := out.Write(csvexport.BOM); err != nil {
			return err
		}
		w := csvexport.NewWriter(out)
		if err := w.WriteHeader(); err != nil {
			return err
		}
		if err := w.WriteRecord(record); err != nil {
			return err
		}
		w.Flush()
		return w.Error()

	case "xlsx":
		if *output == "" {
			return fmt.Errorf("xlsx output requires -o")
		}
		data, err := xlsxexport.Export(record)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err

	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func readDocument(ctx context.Context, extractor *textextract.Extractor, path string) (extract.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.Input{}, fmt.Errorf("reading %s: %w", path, err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return extract.Input{}, fmt.Errorf("%s: %w", path, domain.ErrUnsupportedFileType)
	}

	text, err := extractor.Extract(ctx, data, domain.AllowedFileTypes[fileType])
	if err != nil {
		return extract.Input{}, fmt.Errorf("extracting text from %s: %w", path, err)
	}
	return extract.Input{FullText: text.FullText, Page1Text: text.Page1Text}, nil
}
