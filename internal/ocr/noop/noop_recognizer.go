// Package noop provides a Recognizer that recognizes nothing. Deployments
// without a recognition engine still degrade gracefully: image-only documents
// produce empty text and empty records instead of failures.
package noop

import (
	"context"

	"trimatch/internal/port"
)

type noopRecognizer struct{}

// NewRecognizer creates a no-op port.Recognizer.
func NewRecognizer() port.Recognizer {
	return &noopRecognizer{}
}

func (n *noopRecognizer) Recognize(_ context.Context, _ port.RecognizeInput) (string, error) {
	return "", nil
}
