package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/pdf"
	"resume-builder/internal/shared/config"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func main() {
	cfg := config.Load()

	outDir := flag.String("out", "./out", "output directory for the sample HTML and PDF")
	templateName := flag.String("template", model.DefaultTemplate, "template name (modern, classic, minimal)")
	renderer := flag.String("renderer", cfg.PDFRenderer, "pdf renderer (chrome or fallback)")
	flag.Parse()

	req := sampleRequest()
	req.Template = *templateName
	if err := req.Validate(); err != nil {
		exitErr(fmt.Sprintf("sample request invalid: %v", err))
	}

	html := render.RenderRequest(req)
	doc, err := pdf.NewGenerator(*renderer, cfg.ChromePath).Generate(context.Background(), html, req.PersonalInfo.FullName)
	if err != nil {
		exitErr(fmt.Sprintf("generate pdf: %v", err))
	}

	if err := writeOutputs(*outDir, req, html, doc); err != nil {
		exitErr(fmt.Sprintf("write failed: %v", err))
	}

	info, err := pdf.Inspect(doc.Data)
	if err != nil {
		exitErr(fmt.Sprintf("pdf validation failed: %v", err))
	}

	text, err := pdf.ReadText(doc.Data)
	if err != nil {
		exitErr(fmt.Sprintf("pdf text read failed: %v", err))
	}
	if !strings.Contains(text, req.PersonalInfo.FullName) {
		fmt.Fprintf(os.Stderr, "warning: candidate name not found in extracted PDF text\n")
	}

	fmt.Printf("OK: wrote %s (%s renderer, %d page(s))\n", filepath.Join(*outDir, doc.FileName), doc.Renderer, info.Pages)
}

func writeOutputs(dir string, req model.Request, html string, doc pdf.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "sample_resume.html"), []byte(html), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, doc.FileName), doc.Data, 0o644); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sample_resume_request.json"), payload, 0o644)
}

func sampleRequest() model.Request {
	return model.Request{
		PersonalInfo: model.PersonalInfo{
			FullName:  "Jordan Lee",
			Email:     "jordan.lee@example.com",
			Phone:     "+1-555-0102",
			Location:  "Austin, TX",
			LinkedIn:  "https://www.linkedin.com/in/jordanlee",
			Portfolio: "https://github.com/jordanlee",
		},
		Summary: "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Skills:  []string{"Go", "PostgreSQL", "AWS", "Kubernetes", "gRPC"},
		Experience: []model.ExperienceEntry{
			{
				Company:   "Northwind Systems",
				Role:      "Senior Backend Engineer",
				StartDate: "Jan 2021",
				EndDate:   "Present",
				Responsibilities: "Platform work:\n" +
					"- Led migration of billing services to Kubernetes\n" +
					"- Built event-driven ingestion handling 2M events/day",
				Achievements: []string{"Reduced p99 latency by 35%"},
			},
			{
				Company:          "Contoso Labs",
				Role:             "Backend Engineer",
				StartDate:        "Jun 2017",
				EndDate:          "Dec 2020",
				Responsibilities: "Owned the reporting API and its Postgres schema.",
			},
		},
		Education: []model.EducationEntry{
			{Degree: "B.S. Computer Science", Institution: "University of Texas", Year: "2017"},
		},
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
