package llm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidResponseShape means the provider answered 2xx but the envelope
	// did not contain text where expected.
	ErrInvalidResponseShape = errors.New("invalid provider response shape")
	// ErrEmptyResponse means the provider returned no candidates at all.
	ErrEmptyResponse = errors.New("empty provider response")
)

// ConfigurationError reports that no usable provider is configured.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "llm not configured: " + e.Reason
}

// ProviderError wraps any failure of a provider call.
type ProviderError struct {
	Provider Provider
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

const maxErrorBody = 512

// StatusError is a non-2xx provider answer.
type StatusError struct {
	StatusCode int
	Body       string
}

// NewStatusError keeps a trimmed prefix of the response body.
func NewStatusError(code int, body []byte) *StatusError {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	return &StatusError{StatusCode: code, Body: text}
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
