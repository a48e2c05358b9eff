package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/generatedresumes"
	"resume-builder/internal/pdf"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/storage/object/local"
)

func testRouterConfig() config.Config {
	return config.Config{
		CORSAllowOrigin: []string{"http://localhost:3000"},
		PDFRenderer:     pdf.RendererFallback,
	}
}

func TestRouterServesInfoMetricsAndAPI(t *testing.T) {
	store, err := local.New(t.TempDir())
	if err != nil {
		t.Fatalf("local.New: %v", err)
	}
	r := NewRouter(testRouterConfig(), Deps{
		Store: store,
		Index: generatedresumes.NewMemoryRepo(),
		PDF:   pdf.NewGenerator(pdf.RendererFallback, ""),
	})

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: `"status":"running"`},
		{path: "/api/resume/health", want: `"status":"healthy"`},
		{path: "/metrics", want: "resume_generation_started_total"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			if !strings.Contains(resp.Body.String(), tt.want) {
				t.Fatalf("expected %q in %s", tt.want, resp.Body.String())
			}
			if resp.Header().Get("X-Request-Id") == "" {
				t.Fatalf("expected request id header")
			}
			if resp.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
				t.Fatalf("expected cors header")
			}
		})
	}
}

func TestBuildDepsDefaultsToLocalAndMemory(t *testing.T) {
	cfg := testRouterConfig()
	cfg.ObjectStoreType = "local"
	cfg.LocalStoreDir = t.TempDir()
	cfg.LLMProvider = "gemini"
	cfg.GeminiAPIKey = "g"

	deps, cleanup, err := BuildDeps(context.Background(), cfg)
	if err != nil {
		t.Fatalf("BuildDeps: %v", err)
	}
	defer cleanup()

	if _, ok := deps.Store.(*local.Store); !ok {
		t.Fatalf("expected local store, got %T", deps.Store)
	}
	if _, ok := deps.Index.(*generatedresumes.MemoryRepo); !ok {
		t.Fatalf("expected memory index, got %T", deps.Index)
	}
	gen, ok := deps.PDF.(*pdf.Generator)
	if !ok || gen.Primary != nil {
		t.Fatalf("expected fallback-only generator, got %#v", deps.PDF)
	}
}

func TestLLMCredentials(t *testing.T) {
	creds := LLMCredentials(config.Config{OpenAIAPIKey: "o", GeminiModel: "gemini-x"})
	if creds.OpenAI.APIKey != "o" || creds.Gemini.Model != "gemini-x" {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}

func TestAddr(t *testing.T) {
	for in, want := range map[string]string{"": ":8000", "9000": ":9000", ":7000": ":7000"} {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
