package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"resume-builder/internal/llm"
	"resume-builder/internal/shared/telemetry"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	systemPrompt   = "You are an expert resume writer. Return ONLY valid JSON, no markdown formatting."
)

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client. A nil httpClient uses the shared
// provider timeout.
func NewClient(creds llm.ProviderCredentials, httpClient *http.Client) (*Client, error) {
	if !creds.Configured() {
		return nil, &llm.ConfigurationError{Reason: "OPENAI_API_KEY is required"}
	}
	model := strings.TrimSpace(creds.Model)
	if model == "" {
		model = llm.DefaultModel(llm.ProviderOpenAI)
	}
	baseURL := strings.TrimRight(strings.TrimSpace(creds.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = llm.NewHTTPClient()
	}
	return &Client{
		apiKey:     creds.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type replyMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message *replyMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
}

// Complete sends the prompt as the user message and returns the reply text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    llm.Temperature,
		MaxTokens:      llm.MaxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	body, err := llm.PostJSON(ctx, c.httpClient, c.baseURL+"/chat/completions", headers, reqBody)
	if err != nil {
		return "", c.fail(err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", c.fail(fmt.Errorf("%w: %v", llm.ErrInvalidResponseShape, err))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message == nil {
		return "", c.fail(fmt.Errorf("%w: missing choices[0].message", llm.ErrInvalidResponseShape))
	}
	content := parsed.Choices[0].Message.Content
	if content == nil {
		return "", c.fail(fmt.Errorf("%w: missing choices[0].message.content", llm.ErrInvalidResponseShape))
	}
	if parsed.Usage != nil {
		telemetry.Debug("llm.usage", map[string]any{
			"provider":          string(llm.ProviderOpenAI),
			"model":             c.model,
			"prompt_tokens":     parsed.Usage.PromptTokens,
			"completion_tokens": parsed.Usage.CompletionTokens,
			"total_tokens":      parsed.Usage.TotalTokens,
		})
	}
	return *content, nil
}

// Model returns the model the client calls.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) fail(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("openai request timeout: %w", err)
	}
	return &llm.ProviderError{Provider: llm.ProviderOpenAI, Cause: err}
}

var _ llm.Client = (*Client)(nil)
