package waitlist

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Service handles waitlist signups.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: func() time.Time { return time.Now().UTC() }}
}

// Join records email on the waitlist.
func (s *Service) Join(ctx context.Context, email, source string) (Signup, error) {
	email = strings.TrimSpace(email)
	if email == "" || validate.Var(email, "email") != nil {
		return Signup{}, ErrInvalidEmail
	}

	signup := Signup{
		ID:        uuid.NewString(),
		Email:     email,
		Source:    strings.TrimSpace(source),
		CreatedAt: s.Now(),
	}
	if err := s.Repo.Create(ctx, signup); err != nil {
		return Signup{}, err
	}
	return signup, nil
}

// Count returns the number of signups.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}
