package measurements

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for measurement intake.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: func() time.Time { return time.Now().UTC() }}
}

// Create validates the form and inserts exactly one record.
func (s *Service) Create(ctx context.Context, form IntakeForm) (Measurement, error) {
	in, err := ParseIntake(form)
	if err != nil {
		return Measurement{}, err
	}

	m := Measurement{
		ID:              uuid.NewString(),
		Email:           in.Email,
		Gender:          in.Gender,
		HeightCM:        in.HeightCM,
		ChestCM:         in.ChestCM,
		WaistCM:         in.WaistCM,
		HipsCM:          in.HipsCM,
		ArmCM:           in.ArmCM,
		LegCM:           in.LegCM,
		BicepCM:         in.BicepCM,
		ThighCM:         in.ThighCM,
		MannequinStatus: StatusAbsent,
		CreatedAt:       s.Now(),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Get returns one record.
func (s *Service) Get(ctx context.Context, id string) (Measurement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Measurement{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns records newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Measurement, error) {
	return s.Repo.List(ctx, limit, offset)
}
