package measurements

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Measurement
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Measurement),
	}
}

// Create stores a new record.
func (r *MemoryRepo) Create(ctx context.Context, m Measurement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[m.ID] = m
	return nil
}

// GetByID returns a record by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Measurement, error) {
	if err := ctx.Err(); err != nil {
		return Measurement{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.data[id]
	if !ok {
		return Measurement{}, ErrNotFound
	}
	return m, nil
}

// List returns records newest first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	all := make([]Measurement, 0, len(r.data))
	for _, m := range r.data {
		all = append(all, m)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []Measurement{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

// MarkGenerated records the mannequin URL for a measurement.
func (r *MemoryRepo) MarkGenerated(ctx context.Context, id, url string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	m.MannequinStatus = StatusGenerated
	m.MannequinURL = &url
	generatedAt := at
	m.LastGeneratedAt = &generatedAt
	r.data[id] = m
	return nil
}
