package surveys

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Response
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a result.
func (r *MemoryRepo) Create(ctx context.Context, resp Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, resp)
	return nil
}

// List returns results newest first.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Response, 0, len(r.data))
	for i := len(r.data) - 1; i >= 0; i-- {
		out = append(out, r.data[i])
	}
	if offset >= len(out) {
		return []Response{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}
