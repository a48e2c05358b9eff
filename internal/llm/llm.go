package llm

import (
	"context"
	"strings"
	"time"
)

// Client abstracts LLM providers for resume optimization.
type Client interface {
	// Complete sends a single prompt and returns the provider's raw text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider names a supported LLM backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// Settings shared by every provider call.
const (
	RequestTimeout = 60 * time.Second
	Temperature    = 0.7
	MaxTokens      = 4000
)

// ParseProvider maps a configured name onto a Provider. Unknown or empty
// names return "" and false.
func ParseProvider(name string) (Provider, bool) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		return p, true
	default:
		return "", false
	}
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4o"
	case ProviderAnthropic:
		return "claude-sonnet-4-20250514"
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return ""
	}
}

// ProviderCredentials configures one provider.
type ProviderCredentials struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Configured reports whether an API key is present.
func (c ProviderCredentials) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// Credentials holds the settings for every provider.
type Credentials struct {
	OpenAI    ProviderCredentials
	Anthropic ProviderCredentials
	Gemini    ProviderCredentials
}

// For returns the credentials of p.
func (c Credentials) For(p Provider) ProviderCredentials {
	switch p {
	case ProviderOpenAI:
		return c.OpenAI
	case ProviderAnthropic:
		return c.Anthropic
	case ProviderGemini:
		return c.Gemini
	default:
		return ProviderCredentials{}
	}
}

// ModelFor returns the configured model of p or its default.
func (c Credentials) ModelFor(p Provider) string {
	if model := strings.TrimSpace(c.For(p).Model); model != "" {
		return model
	}
	return DefaultModel(p)
}
