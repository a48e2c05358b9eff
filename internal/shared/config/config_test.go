package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "ALLOWED_ORIGINS", "OBJECT_STORE", "GENERATED_DIR", "LLM_PROVIDER", "OPENAI_MODEL", "PDF_RENDERER", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.ObjectStoreType != "local" || cfg.LocalStoreDir != "./generated" {
		t.Fatalf("unexpected store settings: %s %s", cfg.ObjectStoreType, cfg.LocalStoreDir)
	}
	if cfg.OpenAIModel != "gpt-4o" || cfg.AnthropicModel != "claude-sonnet-4-20250514" || cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("unexpected default models: %s %s %s", cfg.OpenAIModel, cfg.AnthropicModel, cfg.GeminiModel)
	}
	if cfg.PDFRenderer != "chrome" {
		t.Fatalf("expected chrome renderer, got %q", cfg.PDFRenderer)
	}
	if cfg.Debug {
		t.Fatalf("expected debug off")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{"GEMINI_API_KEY", "LLM_PROVIDER"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	content := "GEMINI_API_KEY=\"from-file\"\n# comment\nLLM_PROVIDER=Gemini\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg := Load()
	if cfg.GeminiAPIKey != "from-file" {
		t.Fatalf("expected key from .env, got %q", cfg.GeminiAPIKey)
	}
	if cfg.LLMProvider != "gemini" {
		t.Fatalf("expected normalized provider, got %q", cfg.LLMProvider)
	}
}

func TestNormalizers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "env prod", fn: normalizeEnv, in: "PROD", want: "production"},
		{name: "env unknown", fn: normalizeEnv, in: "qa", want: "dev"},
		{name: "store s3", fn: normalizeStoreType, in: " S3 ", want: "s3"},
		{name: "store other", fn: normalizeStoreType, in: "gcs", want: "local"},
		{name: "renderer fallback", fn: normalizeRenderer, in: "simple", want: "fallback"},
		{name: "renderer default", fn: normalizeRenderer, in: "", want: "chrome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
