package llm

import (
	"context"
	"errors"
	"fmt"
)

// VisionClient abstracts vision-capable inference providers for identity
// document extraction.
type VisionClient interface {
	ExtractDocument(ctx context.Context, input ExtractInput) (string, error)
}

// ExtractInput captures the inputs needed for a document extraction call.
type ExtractInput struct {
	ImageURL     string
	DocumentType string
}

// APIStatusError reports a non-success HTTP status from the inference API.
type APIStatusError struct {
	Status string
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("inference api status: %s", e.Status)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("vision client not configured")

// PlaceholderClient is a stub implementation used when no API key is set.
type PlaceholderClient struct{}

// ExtractDocument returns ErrNotConfigured.
func (PlaceholderClient) ExtractDocument(ctx context.Context, input ExtractInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
