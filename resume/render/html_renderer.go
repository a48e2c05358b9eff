package render

import (
	"bytes"
	"fmt"
	"html/template"

	"resume-builder/resume/model"
)

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} - Resume</title>
</head>
<body style="margin: 0; padding: 40px; background-color: #ffffff; font-family: {{.Style.FontFamily}}; color: #1f2937; line-height: 1.6;">
<div style="max-width: 800px; margin: 0 auto;">
<header style="text-align: center; margin-bottom: {{.Style.SectionSpacing}}; padding-bottom: 24px; border-bottom: 2px solid {{.Style.PrimaryColor}};">
<h1 style="margin: 0 0 12px 0; font-size: 32px; font-weight: 700; color: {{.Style.PrimaryColor}}; letter-spacing: -0.5px;">{{.Name}}</h1>
<div style="font-size: 14px; color: {{.Style.SecondaryColor}};">{{range $i, $c := .Contacts}}{{if $i}} &nbsp;|&nbsp; {{end}}<span style="color: {{$.Style.SecondaryColor}};">{{$c.Icon}} {{$c.Value}}</span>{{end}}</div>
</header>
<section style="margin-bottom: {{.Style.SectionSpacing}};">
<h2 style="font-size: 18px; font-weight: 600; color: {{.Style.PrimaryColor}}; margin: 0 0 12px 0; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; padding-bottom: 8px;">Professional Summary</h2>
<p style="margin: 0; color: #374151; font-size: 14px; text-align: justify;">{{.Summary}}</p>
</section>
{{- if .Skills}}
<section style="margin-bottom: {{.Style.SectionSpacing}};">
<h2 style="font-size: 18px; font-weight: 600; color: {{.Style.PrimaryColor}}; margin: 0 0 12px 0; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; padding-bottom: 8px;">Skills</h2>
<div style="line-height: 2;">
{{- range .Skills}}
<span style="display: inline-block; background-color: #f3f4f6; color: #374151; padding: 6px 14px; margin: 4px; border-radius: 4px; font-size: 13px; font-weight: 500;">{{.}}</span>
{{- end}}
</div>
</section>
{{- end}}
{{- if .Experience}}
<section style="margin-bottom: {{.Style.SectionSpacing}};">
<h2 style="font-size: 18px; font-weight: 600; color: {{.Style.PrimaryColor}}; margin: 0 0 16px 0; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; padding-bottom: 8px;">Work Experience</h2>
{{- range .Experience}}
<div style="margin-bottom: 20px;">
<div style="display: flex; justify-content: space-between; align-items: baseline; margin-bottom: 4px;">
<h3 style="font-size: 16px; font-weight: 600; color: #1f2937; margin: 0;">{{.Role}}</h3>
<span style="font-size: 13px; color: {{$.Style.SecondaryColor}}; font-weight: 500;">{{.StartDate}} – {{.EndDate}}</span>
</div>
<div style="font-size: 14px; font-weight: 600; color: {{$.Style.PrimaryColor}}; margin-bottom: 8px;">{{.Company}}</div>
<ul style="margin: 0; padding-left: 20px;">
{{- range .Bullets}}
<li style="margin-bottom: 6px; color: #374151; font-size: 14px;">{{if .Heading}}<strong>{{.Text}}</strong>{{else}}{{.Text}}{{end}}</li>
{{- end}}
</ul>
</div>
{{- end}}
</section>
{{- end}}
{{- if .Education}}
<section style="margin-bottom: {{.Style.SectionSpacing}};">
<h2 style="font-size: 18px; font-weight: 600; color: {{.Style.PrimaryColor}}; margin: 0 0 12px 0; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #e5e7eb; padding-bottom: 8px;">Education</h2>
{{- range .Education}}
<div style="margin-bottom: 12px;">
<div style="display: flex; justify-content: space-between; align-items: baseline;">
<div>
<span style="font-size: 15px; font-weight: 600; color: #1f2937;">{{.Degree}}</span>
<span style="color: {{$.Style.SecondaryColor}}; font-size: 14px; margin-left: 8px;">| {{.Institution}}</span>
</div>
<span style="font-size: 13px; color: {{$.Style.SecondaryColor}}; font-weight: 500;">{{.Year}}</span>
</div>
</div>
{{- end}}
</section>
{{- end}}
</div>
</body>
</html>
`

var document = template.Must(template.New("resume").Parse(documentTemplate))

// styleView holds template constants as trusted CSS values.
type styleView struct {
	PrimaryColor   template.CSS
	SecondaryColor template.CSS
	FontFamily     template.CSS
	SectionSpacing template.CSS
}

type contactView struct {
	Icon  string
	Value string
}

type experienceView struct {
	Role      string
	Company   string
	StartDate string
	EndDate   string
	Bullets   []Bullet
}

type documentView struct {
	Style      styleView
	Name       string
	Contacts   []contactView
	Summary    string
	Skills     []string
	Experience []experienceView
	Education  []model.EducationEntry
}

// Render builds a complete HTML document for the given resume content.
// Unknown template names render with the fallback template.
func Render(info model.PersonalInfo, summary string, skills []string, experience []model.ExperienceEntry, education []model.EducationEntry, templateName string) string {
	cfg := LookupTemplate(templateName)
	view := documentView{
		Style: styleView{
			PrimaryColor:   template.CSS(cfg.PrimaryColor),
			SecondaryColor: template.CSS(cfg.SecondaryColor),
			FontFamily:     template.CSS(cfg.FontFamily),
			SectionSpacing: template.CSS(cfg.SectionSpacing),
		},
		Name:      info.FullName,
		Contacts:  contacts(info),
		Summary:   summary,
		Skills:    skills,
		Education: education,
	}
	for _, exp := range experience {
		view.Experience = append(view.Experience, experienceView{
			Role:      exp.Role,
			Company:   exp.Company,
			StartDate: exp.StartDate,
			EndDate:   exp.EndDate,
			Bullets:   visibleBullets(Bullets(exp.Responsibilities, exp.Achievements)),
		})
	}

	var buf bytes.Buffer
	if err := document.Execute(&buf, view); err != nil {
		// Only reachable if the template itself is broken.
		panic(fmt.Sprintf("render: execute resume template: %v", err))
	}
	return buf.String()
}

// RenderRequest renders a request as submitted.
func RenderRequest(req model.Request) string {
	return Render(req.PersonalInfo, req.Summary, req.Skills, req.Experience, req.Education, req.TemplateName())
}

// RenderOptimized renders optimized content with the candidate's contact details.
func RenderOptimized(info model.PersonalInfo, opt model.Optimized, templateName string) string {
	return Render(info, opt.Summary, opt.Skills, opt.Experience, opt.Education, templateName)
}

func contacts(info model.PersonalInfo) []contactView {
	out := []contactView{
		{Icon: "📧", Value: info.Email},
		{Icon: "📱", Value: info.Phone},
		{Icon: "📍", Value: info.Location},
	}
	if info.LinkedIn != "" {
		out = append(out, contactView{Icon: "💼", Value: info.LinkedIn})
	}
	if info.Portfolio != "" {
		out = append(out, contactView{Icon: "🌐", Value: info.Portfolio})
	}
	return out
}
