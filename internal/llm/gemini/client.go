package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"resume-builder/internal/llm"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	systemInstruction = "You are an expert resume writer. Return ONLY valid JSON, no markdown formatting, no explanations."
)

// Client implements llm.Client using the Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Gemini client. A nil httpClient uses the shared
// provider timeout.
func NewClient(creds llm.ProviderCredentials, httpClient *http.Client) (*Client, error) {
	if !creds.Configured() {
		return nil, &llm.ConfigurationError{Reason: "GEMINI_API_KEY is required"}
	}
	model := strings.TrimSpace(creds.Model)
	if model == "" {
		model = llm.DefaultModel(llm.ProviderGemini)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = llm.NewHTTPClient()
	}
	return &Client{apiKey: creds.APIKey, model: model, baseURL: baseURL, httpClient: httpClient}, nil
}

type part struct {
	Text *string `json:"text,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

// Complete prefixes the prompt with the system instruction and sends it as
// the only content part.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	text := systemInstruction + "\n\n" + prompt
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: &text}}}},
		GenerationConfig: generationConfig{
			Temperature:      llm.Temperature,
			MaxOutputTokens:  llm.MaxTokens,
			ResponseMimeType: "application/json",
		},
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	body, err := llm.PostJSON(ctx, c.httpClient, endpoint, nil, reqBody)
	if err != nil {
		return "", c.fail(err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", c.fail(fmt.Errorf("%w: %v", llm.ErrInvalidResponseShape, err))
	}
	if len(parsed.Candidates) == 0 {
		return "", c.fail(llm.ErrEmptyResponse)
	}
	first := parsed.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 || first.Parts[0].Text == nil {
		return "", c.fail(fmt.Errorf("%w: missing candidates[0].content.parts[0].text", llm.ErrInvalidResponseShape))
	}
	return *first.Parts[0].Text, nil
}

// Model returns the model the client calls.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) fail(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("gemini request timeout: %w", err)
	}
	return &llm.ProviderError{Provider: llm.ProviderGemini, Cause: err}
}

var _ llm.Client = (*Client)(nil)
