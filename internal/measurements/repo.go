package measurements

import (
	"context"
	"time"
)

// Repo defines persistence operations for measurement records.
type Repo interface {
	Create(ctx context.Context, m Measurement) error
	GetByID(ctx context.Context, id string) (Measurement, error)
	List(ctx context.Context, limit, offset int) ([]Measurement, error)
	// MarkGenerated sets status generated together with url in one update.
	MarkGenerated(ctx context.Context, id, url string, at time.Time) error
}
