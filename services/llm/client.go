package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnavailable is returned by Generate when the backend was constructed
// without working credentials or endpoint. Callers degrade, never crash.
var ErrUnavailable = errors.New("llm backend not available")

type GenerationParams struct {
	Temperature *float32 `json:"temperature"`
	TopK        *int     `json:"top_k"`
	TopP        *float32 `json:"top_p"`
	MaxTokens   *int     `json:"max_tokens"`
	Stop        []string `json:"stop"`
}

// Client defines the standard interface for any enrichment text-generation
// backend. Availability is a capability decided once at construction; an
// unavailable client still satisfies the interface and fails Generate with
// ErrUnavailable.
type Client interface {
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
	Available() bool
}

// NewClient builds a backend by name. Missing credentials produce an
// unavailable client rather than an error; only an unknown backend name is
// an error.
func NewClient(backend string) (Client, error) {
	switch backend {
	case "", "gemini":
		if backend == "" {
			slog.Warn("LLM_BACKEND_TYPE not set, defaulting to gemini")
		}
		return NewGeminiClient(), nil
	case "openai":
		return NewOpenAIClient(), nil
	case "ollama":
		return NewOllamaClient(), nil
	default:
		return nil, fmt.Errorf("unknown LLM backend %q", backend)
	}
}
