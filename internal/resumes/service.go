package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/generatedresumes"
	"resume-builder/internal/llm"
	"resume-builder/internal/optimize"
	"resume-builder/internal/pdf"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const pdfMimeType = "application/pdf"

// ErrPDFGeneration marks failures converting or storing the PDF.
var ErrPDFGeneration = errors.New("pdf generation failed")

// Optimizer rewrites a request through an LLM provider.
type Optimizer interface {
	Optimize(ctx context.Context, req model.Request, override llm.Provider) (optimize.Result, error)
}

// PDFGenerator converts rendered HTML into a named PDF document.
type PDFGenerator interface {
	Generate(ctx context.Context, html, candidate string) (pdf.Document, error)
}

// Service coordinates the generation pipeline.
type Service struct {
	Optimizer Optimizer
	PDF       PDFGenerator
	Store     object.ObjectStore
	Index     generatedresumes.Repo
	Now       func() time.Time
}

// GenerateInput is one generation request.
type GenerateInput struct {
	Request  model.Request
	Optimize bool
	Provider llm.Provider
}

// Generated is the outcome of a successful generation.
type Generated struct {
	Optimized model.Optimized
	HTML      string
	Document  pdf.Document
	Provider  llm.Provider
}

// Generate validates, optionally optimizes, renders, converts and stores one
// resume. Nothing is rendered or stored when optimization fails.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (Generated, error) {
	start := time.Now()
	req := in.Request
	metrics.IncGenerationStarted()
	telemetry.Info("resume.generate.start", map[string]any{
		"template": req.TemplateName(),
		"optimize": in.Optimize,
	})

	out, err := s.generate(ctx, in)
	durationMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("resume.generate.failed", map[string]any{
			"template":    req.TemplateName(),
			"duration_ms": durationMs,
			"error":       err,
		})
		return Generated{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(durationMs)
	telemetry.Info("resume.generate.complete", map[string]any{
		"template":    req.TemplateName(),
		"provider":    string(out.Provider),
		"renderer":    out.Document.Renderer,
		"file":        out.Document.FileName,
		"pages":       out.Document.Pages,
		"duration_ms": durationMs,
	})
	return out, nil
}

func (s *Service) generate(ctx context.Context, in GenerateInput) (Generated, error) {
	req := in.Request
	if err := req.Validate(); err != nil {
		return Generated{}, err
	}

	out := Generated{Optimized: req.AsOptimized()}
	if in.Optimize {
		res, err := s.optimize(ctx, req, in.Provider)
		if err != nil {
			return Generated{}, err
		}
		out.Optimized = res.Optimized
		out.Provider = res.Provider
	}

	out.HTML = render.RenderOptimized(req.PersonalInfo, out.Optimized, req.TemplateName())

	doc, err := s.PDF.Generate(ctx, out.HTML, req.PersonalInfo.FullName)
	if err != nil {
		return Generated{}, fmt.Errorf("%w: %w", ErrPDFGeneration, err)
	}
	size, err := s.Store.SaveWithKey(ctx, doc.FileName, pdfMimeType, bytes.NewReader(doc.Data))
	if err != nil {
		return Generated{}, fmt.Errorf("%w: store %s: %w", ErrPDFGeneration, doc.FileName, err)
	}
	out.Document = doc

	s.record(ctx, req, out, size)
	return out, nil
}

// Optimize runs only the AI step.
func (s *Service) Optimize(ctx context.Context, req model.Request, provider llm.Provider) (optimize.Result, error) {
	if err := req.Validate(); err != nil {
		return optimize.Result{}, err
	}
	return s.optimize(ctx, req, provider)
}

func (s *Service) optimize(ctx context.Context, req model.Request, provider llm.Provider) (optimize.Result, error) {
	if s.Optimizer == nil {
		return optimize.Result{}, &llm.ConfigurationError{Reason: "optimizer not configured"}
	}
	return s.Optimizer.Optimize(ctx, req, provider)
}

// Preview renders the request as submitted.
func (s *Service) Preview(req model.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return render.RenderRequest(req), nil
}

// Open returns the stored PDF. Missing files return object.ErrNotFound.
func (s *Service) Open(ctx context.Context, fileName string) (io.ReadCloser, error) {
	ok, err := s.Store.Exists(ctx, fileName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, object.ErrNotFound
	}
	return s.Store.Open(ctx, fileName)
}

// List returns recently generated files, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]generatedresumes.GeneratedResume, error) {
	if s.Index == nil {
		return []generatedresumes.GeneratedResume{}, nil
	}
	return s.Index.List(ctx, limit, offset)
}

// record indexes a stored file. The PDF is already stored, so failures are
// logged rather than returned.
func (s *Service) record(ctx context.Context, req model.Request, out Generated, size int64) {
	if s.Index == nil {
		return
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	rec := generatedresumes.GeneratedResume{
		ID:            uuid.NewString(),
		FileName:      out.Document.FileName,
		StorageKey:    out.Document.FileName,
		CandidateName: req.PersonalInfo.FullName,
		TemplateID:    render.LookupTemplate(req.TemplateName()).Name,
		Provider:      string(out.Provider),
		Renderer:      out.Document.Renderer,
		MimeType:      pdfMimeType,
		SizeBytes:     size,
		Pages:         out.Document.Pages,
		CreatedAt:     now().UTC(),
	}
	if err := s.Index.Create(ctx, rec); err != nil {
		telemetry.Warn("resume.index.failed", map[string]any{
			"file":  rec.FileName,
			"error": err,
		})
	}
}
