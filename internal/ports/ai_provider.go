package ports

import (
	"context"
)

// LanguageModel is a text completion backend.
type LanguageModel interface {
	// Complete sends a single prompt and returns the raw completion text.
	// Transport and availability problems are returned as errors; there is no retry.
	Complete(ctx context.Context, prompt string) (string, error)

	// Name returns the provider and model in use (e.g.: "ollama/mistral")
	Name() string
}
