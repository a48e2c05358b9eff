package pdf

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
)

// Document is a generated PDF ready to store.
type Document struct {
	FileName string
	Data     []byte
	Pages    int
	Renderer string
}

// Generator prefers the primary converter and falls back when it is missing,
// fails, or returns bytes that are not a PDF.
type Generator struct {
	Primary  Converter
	Fallback Converter
}

// NewGenerator builds a generator for the configured renderer name.
func NewGenerator(renderer, chromePath string) *Generator {
	g := &Generator{Fallback: FallbackConverter{}}
	if renderer == RendererChrome {
		g.Primary = NewChromeConverter(chromePath)
	}
	return g
}

func (g *Generator) Generate(ctx context.Context, html, candidate string) (Document, error) {
	fileName := FileName(candidate)

	if g.Primary != nil {
		data, err := g.Primary.Convert(ctx, html)
		if err == nil {
			info, inspectErr := Inspect(data)
			if inspectErr == nil {
				return Document{FileName: fileName, Data: data, Pages: info.Pages, Renderer: RendererChrome}, nil
			}
			err = inspectErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Document{}, fmt.Errorf("generate pdf: %w", ctxErr)
		}
		metrics.IncPDFFallback()
		telemetry.Warn("pdf.fallback", map[string]any{
			"file":  fileName,
			"error": err,
		})
	}

	if g.Fallback == nil {
		return Document{}, errors.New("generate pdf: no converter configured")
	}
	data, err := g.Fallback.Convert(ctx, html)
	if err != nil {
		return Document{}, fmt.Errorf("generate pdf: %w", err)
	}
	doc := Document{FileName: fileName, Data: data, Renderer: RendererFallback}
	if info, err := Inspect(data); err == nil {
		doc.Pages = info.Pages
	}
	return doc, nil
}
