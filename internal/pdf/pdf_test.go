package pdf

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
)

const sampleHTML = `<!DOCTYPE html><html><head><title>Ada O&#39;Lovelace - Resume</title></head>
<body><h1>Ada</h1><p style="margin: 0;">Builds <strong>analytical</strong> engines &amp; more.</p><p>second</p></body></html>`

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "John  O'Brien!!", want: "john_o_brien"},
		{in: "Ada Lovelace", want: "ada_lovelace"},
		{in: `a<b>c:d"e/f\g|h?i*j`, want: "a_b_c_d_e_f_g_h_i_j"},
		{in: "__Already_Clean__", want: "already_clean"},
		{in: "José Müller", want: "jos_m_ller"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFileName(tt.in); got != tt.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileNameFallsBackToToken(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]+$`)
	for _, in := range []string{"", "!!!", "   "} {
		got := SanitizeFileName(in)
		if len(got) != 8 {
			t.Fatalf("expected 8 character token for %q, got %q", in, got)
		}
		if !regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(got) {
			t.Fatalf("expected hex token, got %q", got)
		}
		if !valid.MatchString(got) {
			t.Fatalf("unexpected characters in %q", got)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("Ada Lovelace"); got != "ada_lovelace_resume.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestExtractText(t *testing.T) {
	if got := extractText(sampleHTML, titlePattern); got != "Ada O'Lovelace - Resume" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := extractText(sampleHTML, paragraphPattern); got != "Builds analytical engines & more." {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := extractText("<html></html>", paragraphPattern); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestFallbackConverterProducesPDF(t *testing.T) {
	data, err := FallbackConverter{}.Convert(context.Background(), sampleHTML)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Fatalf("expected PDF header")
	}
	info, err := Inspect(data)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", info.Pages)
	}
}

func TestFallbackConverterHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FallbackConverter{}).Convert(ctx, sampleHTML); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("<html>not a pdf</html>")} {
		if _, err := Inspect(data); !errors.Is(err, ErrNotPDF) {
			t.Fatalf("expected ErrNotPDF, got %v", err)
		}
		if _, err := ReadText(data); !errors.Is(err, ErrNotPDF) {
			t.Fatalf("expected ErrNotPDF from ReadText, got %v", err)
		}
	}
}

func TestReadTextAcceptsGeneratedPDF(t *testing.T) {
	data, err := FallbackConverter{}.Convert(context.Background(), sampleHTML)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if _, err := ReadText(data); err != nil {
		t.Fatalf("ReadText: %v", err)
	}
}

type stubConverter struct {
	data  []byte
	err   error
	calls int
}

func (s *stubConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	s.calls++
	return s.data, s.err
}

func TestGeneratorSelectsRenderer(t *testing.T) {
	valid, err := FallbackConverter{}.Convert(context.Background(), sampleHTML)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	tests := []struct {
		name    string
		primary Converter
		want    string
	}{
		{name: "primary ok", primary: &stubConverter{data: valid}, want: RendererChrome},
		{name: "primary error", primary: &stubConverter{err: errors.New("chrome missing")}, want: RendererFallback},
		{name: "primary garbage", primary: &stubConverter{data: []byte("nope")}, want: RendererFallback},
		{name: "no primary", primary: nil, want: RendererFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Generator{Primary: tt.primary, Fallback: FallbackConverter{}}
			doc, err := g.Generate(context.Background(), sampleHTML, "Ada Lovelace")
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if doc.Renderer != tt.want {
				t.Fatalf("expected renderer %q, got %q", tt.want, doc.Renderer)
			}
			if doc.FileName != "ada_lovelace_resume.pdf" {
				t.Fatalf("unexpected file name %q", doc.FileName)
			}
			if doc.Pages != 1 || len(doc.Data) == 0 {
				t.Fatalf("expected one page document, got %d pages", doc.Pages)
			}
		})
	}
}

func TestGeneratorStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{Primary: &stubConverter{err: context.Canceled}, Fallback: FallbackConverter{}}
	if _, err := g.Generate(ctx, sampleHTML, "Ada"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestNewGenerator(t *testing.T) {
	if g := NewGenerator(RendererFallback, ""); g.Primary != nil {
		t.Fatalf("expected no primary for fallback renderer")
	}
	g := NewGenerator(RendererChrome, "/usr/bin/chromium")
	chrome, ok := g.Primary.(*ChromeConverter)
	if !ok || chrome.ExecPath != "/usr/bin/chromium" {
		t.Fatalf("expected chrome primary, got %#v", g.Primary)
	}
}
