package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"resume-builder/internal/llm"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1"
	apiVersion     = "2023-06-01"
	systemPrompt   = "You are an expert resume writer. Return ONLY valid JSON."
)

// Client implements llm.Client using the Anthropic Messages API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Anthropic client. A nil httpClient uses the
// shared provider timeout.
func NewClient(creds llm.ProviderCredentials, httpClient *http.Client) (*Client, error) {
	if !creds.Configured() {
		return nil, &llm.ConfigurationError{Reason: "ANTHROPIC_API_KEY is required"}
	}
	model := strings.TrimSpace(creds.Model)
	if model == "" {
		model = llm.DefaultModel(llm.ProviderAnthropic)
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

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system"`
	Messages    []message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string  `json:"type"`
		Text *string `json:"text"`
	} `json:"content"`
}

// Complete sends the prompt as a single user message.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := messagesRequest{
		Model:       c.model,
		MaxTokens:   llm.MaxTokens,
		Temperature: llm.Temperature,
		System:      systemPrompt,
		Messages:    []message{{Role: "user", Content: prompt}},
	}
	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": apiVersion,
	}

	body, err := llm.PostJSON(ctx, c.httpClient, c.baseURL+"/messages", headers, reqBody)
	if err != nil {
		return "", c.fail(err)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", c.fail(fmt.Errorf("%w: %v", llm.ErrInvalidResponseShape, err))
	}
	if len(parsed.Content) == 0 || parsed.Content[0].Text == nil {
		return "", c.fail(fmt.Errorf("%w: missing content[0].text", llm.ErrInvalidResponseShape))
	}
	return *parsed.Content[0].Text, nil
}

// Model returns the model the client calls.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) fail(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("anthropic request timeout: %w", err)
	}
	return &llm.ProviderError{Provider: llm.ProviderAnthropic, Cause: err}
}

var _ llm.Client = (*Client)(nil)
