package surveys

import "context"

// Repo stores survey results. Results are insert-only.
type Repo interface {
	Create(ctx context.Context, r Response) error
	List(ctx context.Context, limit, offset int) ([]Response, error)
}
