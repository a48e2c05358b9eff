package generatedresumes

import "context"

// DefaultListLimit applies when a caller passes no limit.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Repo defines persistence operations for generated resume records.
type Repo interface {
	Create(ctx context.Context, resume GeneratedResume) error
	List(ctx context.Context, limit, offset int) ([]GeneratedResume, error)
}

// ClampPage returns the page bounds List actually applies. Limits fall back
// to DefaultListLimit and are capped at MaxListLimit.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
