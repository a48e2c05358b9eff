package resumes

import (
	"resume-builder/internal/generatedresumes"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const downloadPrefix = "/api/resume/download/"

// GenerateRequest is the body of the generate endpoint.
type GenerateRequest struct {
	model.Request
	Optimize bool   `json:"optimize"`
	Provider string `json:"provider"`
}

// GenerateResponse is returned after a successful generation.
type GenerateResponse struct {
	model.Optimized
	ResumeHTML     string `json:"resume_html"`
	PDFDownloadURL string `json:"pdf_download_url"`
	Provider       string `json:"provider,omitempty"`
	PDFRenderer    string `json:"pdf_renderer"`
}

// OptimizeResponse is returned by the optimize endpoint.
type OptimizeResponse struct {
	model.Optimized
	Provider string `json:"provider"`
}

// GeneratedListResponse wraps the generated files page.
type GeneratedListResponse struct {
	Items  []generatedresumes.GeneratedResume `json:"items"`
	Limit  int                                `json:"limit"`
	Offset int                                `json:"offset"`
}

// TemplatesResponse lists the available templates.
type TemplatesResponse struct {
	Templates []render.TemplateConfig `json:"templates"`
	Default   string                  `json:"default"`
}

func toGenerateResponse(g Generated) GenerateResponse {
	return GenerateResponse{
		Optimized:      g.Optimized,
		ResumeHTML:     g.HTML,
		PDFDownloadURL: downloadPrefix + g.Document.FileName,
		Provider:       string(g.Provider),
		PDFRenderer:    g.Document.Renderer,
	}
}
