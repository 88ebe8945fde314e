package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts hosted generative-language providers. Generate sends
// exactly one HTTPS request for the prompt and returns the generated text.
// Output for identical prompts is not repeatable; callers must not assume
// idempotence.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse means the provider envelope parsed but contained no
// generated text at the expected path.
var ErrEmptyResponse = errors.New("empty response from provider")

// ProviderError is a structured error reported by the provider itself. It
// takes precedence over any text extracted from the same response.
type ProviderError struct {
	Provider string
	Code     int
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

// NetworkError is a transport-level failure: timeout, DNS, connection, or a
// non-2xx status with no structured error body. Never retried.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ErrNotConfigured is returned by PlaceholderClient.
var ErrNotConfigured = errors.New("generation provider not configured")

// PlaceholderClient stands in when no provider API key is configured so the
// process still boots; every call fails with ErrNotConfigured.
type PlaceholderClient struct{}

func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
