package render

import "strings"

// TemplateConfig bundles the presentation constants a template controls.
type TemplateConfig struct {
	Name           string `json:"name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	SectionSpacing string `json:"section_spacing"`
}

// FallbackTemplate is used for unknown template names.
const FallbackTemplate = "modern"

var templateOrder = []string{"modern", "classic", "minimal"}

var templates = map[string]TemplateConfig{
	"modern": {
		Name:           "modern",
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#64748b",
		FontFamily:     "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif",
		SectionSpacing: "24px",
	},
	"classic": {
		Name:           "classic",
		PrimaryColor:   "#1f2937",
		SecondaryColor: "#4b5563",
		FontFamily:     "Georgia, 'Times New Roman', serif",
		SectionSpacing: "20px",
	},
	"minimal": {
		Name:           "minimal",
		PrimaryColor:   "#000000",
		SecondaryColor: "#666666",
		FontFamily:     "'Helvetica Neue', Helvetica, Arial, sans-serif",
		SectionSpacing: "16px",
	},
}

// LookupTemplate returns the named template, or the fallback for unknown names.
func LookupTemplate(name string) TemplateConfig {
	if cfg, ok := templates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return cfg
	}
	return templates[FallbackTemplate]
}

// IsKnownTemplate reports whether name matches a template without falling back.
func IsKnownTemplate(name string) bool {
	_, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Templates lists every template in a stable order.
func Templates() []TemplateConfig {
	out := make([]TemplateConfig, 0, len(templateOrder))
	for _, name := range templateOrder {
		out = append(out, templates[name])
	}
	return out
}
