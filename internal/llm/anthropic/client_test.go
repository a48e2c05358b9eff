package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-builder/internal/llm"
)

func TestCompleteSendsMessagesRequest(t *testing.T) {
	var got map[string]any
	var header http.Header
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		header = r.Header.Clone()
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{}"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(llm.ProviderCredentials{APIKey: "secret", Model: "claude-test", BaseURL: server.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	text, err := client.Complete(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != "{}" {
		t.Fatalf("unexpected text %q", text)
	}
	if path != "/messages" {
		t.Fatalf("unexpected path %q", path)
	}
	if header.Get("x-api-key") != "secret" || header.Get("anthropic-version") != "2023-06-01" {
		t.Fatalf("unexpected headers %v", header)
	}
	if got["model"] != "claude-test" || got["system"] != systemPrompt {
		t.Fatalf("unexpected body %v", got)
	}
	if got["max_tokens"] != float64(4000) || got["temperature"] != 0.7 {
		t.Fatalf("unexpected sampling settings %v", got)
	}
}

func TestCompleteRejectsMissingText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty content", body: `{"content":[]}`},
		{name: "no text", body: `{"content":[{"type":"tool_use"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(llm.ProviderCredentials{APIKey: "k", BaseURL: server.URL}, nil)
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			_, err = client.Complete(context.Background(), "p")
			var providerErr *llm.ProviderError
			if !errors.As(err, &providerErr) || providerErr.Provider != llm.ProviderAnthropic {
				t.Fatalf("expected anthropic ProviderError, got %v", err)
			}
			if !errors.Is(err, llm.ErrInvalidResponseShape) {
				t.Fatalf("expected shape error, got %v", err)
			}
		})
	}
}

func TestCompleteSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", 529)
	}))
	defer server.Close()

	client, err := NewClient(llm.ProviderCredentials{APIKey: "k", BaseURL: server.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Complete(context.Background(), "p")
	var statusErr *llm.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 529 || statusErr.Body != "overloaded" {
		t.Fatalf("expected status 529, got %v", err)
	}
}
