package resumes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/generatedresumes"
	"resume-builder/internal/llm"
	"resume-builder/internal/optimize"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// Handler wires HTTP handlers to the resume service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/resume")
	g.POST("/generate-resume", h.generate)
	g.POST("/optimize", h.optimize)
	g.POST("/preview", h.preview)
	g.GET("/download/:filename", h.download)
	g.GET("/generated", h.list)
	g.GET("/templates", h.templates)
	g.GET("/health", h.health)
}

func (h *Handler) generate(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	provider, ok := parseProvider(c, body.Provider)
	if !ok {
		return
	}
	c.Set(middleware.TemplateKey, body.TemplateName())

	out, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		Request:  body.Request,
		Optimize: body.Optimize,
		Provider: provider,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.ProviderKey, string(out.Provider))
	c.Set(middleware.PDFFileKey, out.Document.FileName)

	respond.OK(c, toGenerateResponse(out))
}

func (h *Handler) optimize(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	provider, ok := parseProvider(c, body.Provider)
	if !ok {
		return
	}

	res, err := h.Svc.Optimize(c.Request.Context(), body.Request, provider)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.ProviderKey, string(res.Provider))

	respond.OK(c, OptimizeResponse{Optimized: res.Optimized, Provider: string(res.Provider)})
}

func (h *Handler) preview(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid json body", nil)
		return
	}
	c.Set(middleware.TemplateKey, req.TemplateName())

	document, err := h.Svc.Preview(req)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.HTML(c, http.StatusOK, document)
}

func (h *Handler) download(c *gin.Context) {
	fileName, err := util.DownloadFileName(c.Param("filename"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_filename", "Invalid filename", nil)
		return
	}
	c.Set(middleware.PDFFileKey, fileName)

	reader, err := h.Svc.Open(c.Request.Context(), fileName)
	if err != nil {
		switch {
		case errors.Is(err, object.ErrNotFound), errors.Is(err, object.ErrInvalidKey):
			respond.Error(c, http.StatusNotFound, "not_found", "PDF file not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load PDF file", nil)
		}
		return
	}
	defer reader.Close()

	c.Header("Content-Type", pdfMimeType)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		telemetry.Warn("resume.download.copy_failed", map[string]any{
			"file":  fileName,
			"error": err,
		})
	}
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := generatedresumes.ClampPage(
		queryInt(c, "limit", generatedresumes.DefaultListLimit),
		queryInt(c, "offset", 0),
	)

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list generated resumes", nil)
		return
	}
	respond.OK(c, GeneratedListResponse{Items: items, Limit: limit, Offset: offset})
}

func (h *Handler) templates(c *gin.Context) {
	respond.OK(c, TemplatesResponse{Templates: render.Templates(), Default: model.DefaultTemplate})
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{"status": "healthy", "service": "resume-builder"})
}

func parseProvider(c *gin.Context, name string) (llm.Provider, bool) {
	if name == "" {
		return "", true
	}
	p, ok := llm.ParseProvider(name)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown provider",
			[]model.FieldError{{Field: "provider", Rule: "oneof"}})
		return "", false
	}
	return p, true
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// writeError maps pipeline errors onto the API error body.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *model.ValidationError
		configErr     *llm.ConfigurationError
		providerErr   *llm.ProviderError
		parseErr      *optimize.ParseError
	)
	switch {
	case errors.As(err, &validationErr):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume request", validationErr.Fields)
	case errors.As(err, &configErr):
		respond.Error(c, http.StatusServiceUnavailable, "ai_not_configured", configErr.Error(), nil)
	case errors.As(err, &providerErr):
		c.Set(middleware.ProviderKey, string(providerErr.Provider))
		respond.Error(c, http.StatusBadGateway, "ai_provider_error", "AI provider request failed", gin.H{"provider": providerErr.Provider})
	case errors.As(err, &parseErr):
		respond.Error(c, http.StatusBadGateway, "invalid_ai_output", "AI returned an unreadable response", nil)
	case errors.Is(err, ErrPDFGeneration):
		respond.Error(c, http.StatusInternalServerError, "pdf_generation_failed", "failed to generate PDF", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate resume", nil)
	}
}
