package providers

import (
	"fmt"
	"net/http"

	"resume-builder/internal/llm"
	"resume-builder/internal/llm/anthropic"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/llm/openai"
)

// New builds the client for p from creds.
func New(p llm.Provider, creds llm.Credentials) (llm.Client, error) {
	return NewWithHTTPClient(p, creds, nil)
}

// NewWithHTTPClient is New with a caller-supplied HTTP client.
func NewWithHTTPClient(p llm.Provider, creds llm.Credentials, hc *http.Client) (llm.Client, error) {
	var (
		client llm.Client
		err    error
	)
	switch p {
	case llm.ProviderOpenAI:
		client, err = wrap(openai.NewClient(creds.OpenAI, hc))
	case llm.ProviderAnthropic:
		client, err = wrap(anthropic.NewClient(creds.Anthropic, hc))
	case llm.ProviderGemini:
		client, err = wrap(gemini.NewClient(creds.Gemini, hc))
	default:
		err = &llm.ConfigurationError{Reason: fmt.Sprintf("unknown provider %q", p)}
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// wrap keeps a typed nil client out of the returned interface.
func wrap[C llm.Client](c C, err error) (llm.Client, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
