package optimize

import (
	"encoding/json"
	"fmt"

	"resume-builder/internal/llm"
	"resume-builder/resume/model"
)

// ParseError reports provider output that is not a JSON object.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid AI output: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// decode strips fences and decodes the provider output as a JSON object.
func decode(raw string) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal([]byte(llm.StripCodeFences(raw)), &doc); err != nil {
		return nil, &ParseError{Cause: err}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &ParseError{Cause: fmt.Errorf("expected JSON object, got %T", doc)}
	}
	return obj, nil
}

// Normalize turns provider output into an optimized resume, falling back to
// the original request field by field. Values of the wrong type count as
// missing.
func Normalize(raw string, original model.Request) (model.Optimized, error) {
	doc, err := decode(raw)
	if err != nil {
		return model.Optimized{}, err
	}
	fallback := original.AsOptimized()

	out := model.Optimized{
		Summary:     fallback.Summary,
		Experience:  fallback.Experience,
		Education:   fallback.Education,
		Skills:      fallback.Skills,
		ATSKeywords: []string{},
	}

	if summary, ok := doc["optimized_summary"].(string); ok && summary != "" {
		out.Summary = summary
	}

	if items, ok := doc["optimized_experience"].([]any); ok && len(items) > 0 {
		out.Experience = make([]model.ExperienceEntry, 0, len(items))
		for _, item := range items {
			obj, _ := item.(map[string]any)
			out.Experience = append(out.Experience, model.ExperienceEntry{
				Company:          stringField(obj, "company"),
				Role:             stringField(obj, "role"),
				StartDate:        stringField(obj, "start_date"),
				EndDate:          stringField(obj, "end_date"),
				Responsibilities: stringField(obj, "responsibilities"),
				Achievements:     stringList(obj["achievements"]),
			})
		}
	}

	if items, ok := doc["optimized_education"].([]any); ok && len(items) > 0 {
		out.Education = make([]model.EducationEntry, 0, len(items))
		for _, item := range items {
			obj, _ := item.(map[string]any)
			out.Education = append(out.Education, model.EducationEntry{
				Degree:      stringField(obj, "degree"),
				Institution: stringField(obj, "institution"),
				Year:        stringField(obj, "year"),
			})
		}
	}

	if _, ok := doc["optimized_skills"].([]any); ok {
		out.Skills = stringList(doc["optimized_skills"])
	}
	if _, ok := doc["ats_keywords"].([]any); ok {
		out.ATSKeywords = stringList(doc["ats_keywords"])
	}
	return out, nil
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// stringList keeps the string elements of a JSON array.
func stringList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
