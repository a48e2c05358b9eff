package pdf

import "context"

// Converter turns a rendered HTML document into PDF bytes.
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// Renderer names recorded on generated documents.
const (
	RendererChrome   = "chrome"
	RendererFallback = "fallback"
)
