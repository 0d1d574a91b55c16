package surveys

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service validates and records survey submissions.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: func() time.Time { return time.Now().UTC() }}
}

// Submit validates, normalizes and inserts one result.
func (s *Service) Submit(ctx context.Context, a Answers) (Response, error) {
	if err := Validate(a); err != nil {
		return Response{}, err
	}
	resp := Normalize(a)
	resp.ID = uuid.NewString()
	resp.CreatedAt = s.Now()
	if err := s.Repo.Create(ctx, resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// List returns stored results newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Response, error) {
	return s.Repo.List(ctx, limit, offset)
}
