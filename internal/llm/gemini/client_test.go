package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/llm"
)

func TestCompleteSendsGenerateContent(t *testing.T) {
	var got generateRequest
	var path, key string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		path = r.URL.Path
		key = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"ats_keywords\":[]}"}]}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(llm.ProviderCredentials{APIKey: "g-key", BaseURL: server.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	text, err := client.Complete(context.Background(), "prompt text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != `{"ats_keywords":[]}` {
		t.Fatalf("unexpected text %q", text)
	}
	if path != "/models/gemini-2.0-flash:generateContent" {
		t.Fatalf("unexpected path %q", path)
	}
	if key != "g-key" {
		t.Fatalf("unexpected key %q", key)
	}
	if len(got.Contents) != 1 || len(got.Contents[0].Parts) != 1 || got.Contents[0].Parts[0].Text == nil {
		t.Fatalf("unexpected contents %+v", got.Contents)
	}
	sent := *got.Contents[0].Parts[0].Text
	if !strings.HasPrefix(sent, systemInstruction+"\n\n") || !strings.HasSuffix(sent, "prompt text") {
		t.Fatalf("unexpected prompt %q", sent)
	}
	cfg := got.GenerationConfig
	if cfg.Temperature != 0.7 || cfg.MaxOutputTokens != 4000 || cfg.ResponseMimeType != "application/json" {
		t.Fatalf("unexpected generation config %+v", cfg)
	}
}

func TestCompleteResponseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "no candidates", body: `{"candidates":[]}`, want: llm.ErrEmptyResponse},
		{name: "missing candidates key", body: `{}`, want: llm.ErrEmptyResponse},
		{name: "no parts", body: `{"candidates":[{"content":{"parts":[]}}]}`, want: llm.ErrInvalidResponseShape},
		{name: "no content", body: `{"candidates":[{}]}`, want: llm.ErrInvalidResponseShape},
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
			if !errors.As(err, &providerErr) || providerErr.Provider != llm.ProviderGemini {
				t.Fatalf("expected gemini ProviderError, got %v", err)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
