package generatedresumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generated resume records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []GeneratedResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores the record.
func (r *MemoryRepo) Create(ctx context.Context, resume GeneratedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := resume.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, resume)
	return nil
}

// List returns records newest first with limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = ClampPage(limit, offset)

	r.mu.RLock()
	records := make([]GeneratedResume, len(r.records))
	copy(records, r.records)
	r.mu.RUnlock()

	if offset >= len(records) {
		return []GeneratedResume{}, nil
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	end := len(records)
	if offset+limit < end {
		end = offset + limit
	}
	return records[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
