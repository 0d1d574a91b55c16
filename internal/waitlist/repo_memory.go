package waitlist

import (
	"context"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.Mutex
	emails map[string]Signup
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{emails: make(map[string]Signup)}
}

// Create stores a signup, keyed case-insensitively by email.
func (r *MemoryRepo) Create(ctx context.Context, s Signup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.ToLower(s.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emails[key]; ok {
		return ErrAlreadyJoined
	}
	r.emails[key] = s
	return nil
}

// Count returns the number of signups.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.emails), nil
}
