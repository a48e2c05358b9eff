package llm

import (
	_ "embed"
	"fmt"
	"strings"

	"resume-builder/resume/model"
)

//go:embed prompts/resume_optimize_v1.txt
var resumeOptimizeV1 string

const promptPreamble = `You are an expert resume writer and career coach with 15+ years of experience.
Your task is to optimize a resume to make it highly effective, ATS-friendly, and compelling to hiring managers.`

// BuildResumePrompt renders the optimization prompt for a resume request.
func BuildResumePrompt(req model.Request) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\n")

	if jd := strings.TrimSpace(req.JobDescription); jd != "" {
		b.WriteString("TARGET JOB DESCRIPTION:\n")
		b.WriteString(req.JobDescription)
		b.WriteString("\n\n")
	}

	info := req.PersonalInfo
	b.WriteString("CANDIDATE INFORMATION:\n\n")
	b.WriteString("PERSONAL DETAILS:\n")
	fmt.Fprintf(&b, "- Name: %s\n", info.FullName)
	fmt.Fprintf(&b, "- Email: %s\n", info.Email)
	fmt.Fprintf(&b, "- Phone: %s\n", info.Phone)
	fmt.Fprintf(&b, "- Location: %s\n", info.Location)
	if info.LinkedIn != "" {
		fmt.Fprintf(&b, "- LinkedIn: %s\n", info.LinkedIn)
	}
	if info.Portfolio != "" {
		fmt.Fprintf(&b, "- Portfolio: %s\n", info.Portfolio)
	}

	b.WriteString("\nCURRENT SUMMARY:\n")
	b.WriteString(req.Summary)
	b.WriteString("\n\nSKILLS:\n")
	if len(req.Skills) > 0 {
		b.WriteString(strings.Join(req.Skills, ", "))
	} else {
		b.WriteString("Not provided")
	}

	b.WriteString("\n\nEXPERIENCE:\n")
	for i, exp := range req.Experience {
		fmt.Fprintf(&b, "\nEXPERIENCE %d:\n", i+1)
		fmt.Fprintf(&b, "Company: %s\n", exp.Company)
		fmt.Fprintf(&b, "Role: %s\n", exp.Role)
		fmt.Fprintf(&b, "Period: %s - %s\n", exp.StartDate, exp.EndDate)
		fmt.Fprintf(&b, "Responsibilities: %s\n", exp.Responsibilities)
	}

	b.WriteString("\nEDUCATION:\n")
	for _, edu := range req.Education {
		fmt.Fprintf(&b, "- %s, %s, %s\n", edu.Degree, edu.Institution, edu.Year)
	}

	b.WriteString("\n---\n\n")
	b.WriteString(resumeOptimizeV1)
	return b.String()
}
