package port

import (
	"context"

	"trimatch/internal/domain"
)

// TextResult is the best-effort plain text pulled from a document blob.
// Page-one text is kept separately because identifying fields conventionally
// appear there. Empty strings mean unreadable input, never an error.
type TextResult struct {
	FullText  string
	Page1Text string
	PageCount int
	OCRUsed   bool
}

// TextExtractor turns document bytes into plain text, degrading gracefully on
// unreadable input.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, contentType string) (*TextResult, error)
}

// RecognizeInput carries one image (or an un-rasterized PDF) to a recognition
// engine.
type RecognizeInput struct {
	Image      []byte
	Language   string
	DPI        int
	LayoutHint domain.LayoutHint
}

// Recognizer abstracts the optical recognition engine. Engine choice affects
// only acquisition quality, not the extraction core's contract.
type Recognizer interface {
	Recognize(ctx context.Context, in RecognizeInput) (string, error)
}
