package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DefaultTemplate is used when a request names no template.
const DefaultTemplate = "modern"

// PersonalInfo captures top-of-resume contact and identity details.
type PersonalInfo struct {
	FullName  string `json:"full_name" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ExperienceEntry represents a work history entry. Dates are free text.
type ExperienceEntry struct {
	Company          string   `json:"company" validate:"required,notblank"`
	Role             string   `json:"role" validate:"required,notblank"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities string   `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
}

// EducationEntry represents an education entry.
type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,notblank"`
	Institution string `json:"institution" validate:"required,notblank"`
	Year        string `json:"year"`
}

// Request is the resume payload submitted by a client.
type Request struct {
	PersonalInfo   PersonalInfo      `json:"personal_info" validate:"required"`
	Summary        string            `json:"summary"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience" validate:"dive"`
	Education      []EducationEntry  `json:"education" validate:"dive"`
	JobDescription string            `json:"job_description"`
	Template       string            `json:"template"`
}

// Optimized is the AI-rewritten resume content.
type Optimized struct {
	Summary     string            `json:"optimized_summary"`
	Experience  []ExperienceEntry `json:"optimized_experience"`
	Education   []EducationEntry  `json:"optimized_education"`
	Skills      []string          `json:"optimized_skills"`
	ATSKeywords []string          `json:"ats_keywords"`
}

// TemplateName returns the requested template, defaulting to DefaultTemplate.
func (r Request) TemplateName() string {
	if name := strings.ToLower(strings.TrimSpace(r.Template)); name != "" {
		return name
	}
	return DefaultTemplate
}

// AsOptimized mirrors the request into the optimized shape without AI changes.
// Achievements are always empty and ATS keywords are absent.
func (r Request) AsOptimized() Optimized {
	experience := make([]ExperienceEntry, 0, len(r.Experience))
	for _, exp := range r.Experience {
		experience = append(experience, ExperienceEntry{
			Company:          exp.Company,
			Role:             exp.Role,
			StartDate:        exp.StartDate,
			EndDate:          exp.EndDate,
			Responsibilities: exp.Responsibilities,
			Achievements:     []string{},
		})
	}
	education := make([]EducationEntry, len(r.Education))
	copy(education, r.Education)
	skills := make([]string, len(r.Skills))
	copy(skills, r.Skills)
	return Optimized{
		Summary:     r.Summary,
		Experience:  experience,
		Education:   education,
		Skills:      skills,
		ATSKeywords: []string{},
	}
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return "invalid resume request: " + strings.Join(parts, ", ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// Validate enforces presence and format rules on the request.
func (r Request) Validate() error {
	err := requestValidator().Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: trimRootNamespace(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}
	return out
}

func trimRootNamespace(ns string) string {
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
