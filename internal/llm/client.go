// Package llm provides the optional AI reply generator used by the
// assistant. The concrete OpenAI client is selected at startup based on
// credential presence; callers depend only on the Client interface and
// treat any error as "use the rule-based reply instead".
package llm

import (
	"context"
	"errors"
	"log/slog"
)

// ErrUnavailable is returned by the no-op client when no AI backend is
// configured.
var ErrUnavailable = errors.New("llm: no client configured")

// Client generates a reply for a user message under a system directive.
// Implementations return an empty string with a nil error when the
// backend produced no usable content.
type Client interface {
	GenerateReply(ctx context.Context, system, user string) (string, error)
}

// Ensure both implementations satisfy Client.
var (
	_ Client = (*OpenAIClient)(nil)
	_ Client = unavailableClient{}
)

// unavailableClient is the strategy selected when AI is not configured.
// Every call fails with ErrUnavailable so the caller falls back.
type unavailableClient struct{}

func (unavailableClient) GenerateReply(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}

// Unavailable returns a Client whose calls always fail with
// ErrUnavailable.
func Unavailable() Client {
	return unavailableClient{}
}

// FromConfig selects the client strategy for the given configuration.
// The boolean reports whether AI replies should be attempted by default:
// it is true only when a credential is present and the client could be
// constructed. Missing credentials and construction failures both yield
// the no-op client rather than an error.
func FromConfig(cfg Config) (Client, bool) {
	if cfg.APIKey == "" {
		slog.Info("AI replies disabled (OPENAI_API_KEY not set)")
		return Unavailable(), false
	}

	client, err := NewOpenAIClient(cfg)
	if err != nil {
		slog.Warn("Failed to configure OpenAI client, AI replies disabled", "error", err)
		return Unavailable(), false
	}

	slog.Info("OpenAI replies enabled", "model", client.Model())
	return client, true
}
