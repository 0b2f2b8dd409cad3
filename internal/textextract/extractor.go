// Package textextract is the text-acquisition collaborator: it turns document
// bytes into plain text for the extraction core. Rasterization and optical
// recognition live behind port.Recognizer; this package only orchestrates.
package textextract

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"trimatch/internal/domain"
	"trimatch/internal/port"
)

// Options bounds how much acquisition work is done per document.
type Options struct {
	Language             string
	MaxPages             int // 0 = unlimited
	ResolutionDPI        int
	ForceFullRecognition bool
	LayoutHint           domain.LayoutHint
}

// Extractor implements port.TextExtractor over PDF text layers, images and
// plain text, with recognition as the fallback for image-only input.
type Extractor struct {
	recognizer port.Recognizer
	opts       Options
}

// New creates an Extractor. A nil recognizer disables recognition entirely;
// image-only documents then degrade to empty text.
func New(recognizer port.Recognizer, opts Options) *Extractor {
	return &Extractor{recognizer: recognizer, opts: opts}
}

// Extract returns best-effort plain text for the blob. Unreadable input yields
// empty text, not an error: the extraction core treats empty text as "no
// fields extractable".
func (e *Extractor) Extract(ctx context.Context, data []byte, contentType string) (*port.TextResult, error) {
	switch contentType {
	case "application/pdf":
		return e.extractPDF(ctx, data)
	case domain.ContentTypeDOCX:
		text, err := docxText(data)
		if err != nil {
			log.Printf("textextract.Extractor: docx unreadable: %v", err)
			text = ""
		}
		return &port.TextResult{FullText: text, Page1Text: text, PageCount: 1}, nil
	case "image/jpeg", "image/png":
		text := e.recognize(ctx, data)
		return &port.TextResult{
			FullText:  text,
			Page1Text: text,
			PageCount: 1,
			OCRUsed:   text != "",
		}, nil
	case "text/plain", "":
		text := decodePlainText(data)
		return &port.TextResult{FullText: text, Page1Text: text, PageCount: 1}, nil
	default:
		return nil, fmt.Errorf("textextract: unsupported content type %q: %w", contentType, domain.ErrUnsupportedFileType)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (*port.TextResult, error) {
	pages, err := pdfPageTexts(data, e.opts.MaxPages)
	if err != nil {
		log.Printf("textextract.Extractor: pdf text layer unreadable: %v", err)
		pages = nil
	}

	result := &port.TextResult{PageCount: len(pages)}
	if len(pages) > 0 {
		result.Page1Text = pages[0]
		result.FullText = strings.Join(pages, "\n")
	}

	if strings.TrimSpace(result.FullText) != "" && !e.opts.ForceFullRecognition {
		return result, nil
	}

	// No usable text layer (or recognition forced): hand the blob to the
	// recognition engine. A real engine rasterizes pages itself.
	if text := e.recognize(ctx, data); text != "" {
		result.FullText = text
		result.Page1Text = firstPageGuess(text)
		result.OCRUsed = true
	}
	return result, nil
}

func (e *Extractor) recognize(ctx context.Context, data []byte) string {
	if e.recognizer == nil {
		return ""
	}
	text, err := e.recognizer.Recognize(ctx, port.RecognizeInput{
		Image:      data,
		Language:   e.opts.Language,
		DPI:        e.opts.ResolutionDPI,
		LayoutHint: e.opts.LayoutHint,
	})
	if err != nil {
		log.Printf("textextract.Extractor: recognition failed: %v", err)
		return ""
	}
	return text
}

// decodePlainText keeps valid UTF-8 and drops everything else, mirroring a
// lenient decode of unknown byte content.
func decodePlainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}

// firstPageGuess approximates page-one text when recognition output has no
// page boundaries: take everything up to the first form feed, or the whole
// text if none.
func firstPageGuess(text string) string {
	if i := strings.IndexByte(text, '\f'); i > 0 {
		return text[:i]
	}
	return text
}
