package optimize

import (
	_ "embed"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/optimized_resume.schema.json
var optimizedResumeSchema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(optimizedResumeSchema))
	})
	return schema, schemaErr
}

// CheckShape validates provider output against the optimized resume schema
// and returns the violations. Output that does not decode is reported as a
// single violation.
func CheckShape(raw string) []string {
	doc, err := decode(raw)
	if err != nil {
		return []string{err.Error()}
	}
	s, err := loadSchema()
	if err != nil {
		return []string{"schema: " + err.Error()}
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return []string{err.Error()}
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return msgs
}
