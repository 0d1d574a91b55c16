package waitlist

import "context"

// Repo stores signups. Create returns ErrAlreadyJoined for a duplicate email.
type Repo interface {
	Create(ctx context.Context, s Signup) error
	Count(ctx context.Context) (int, error)
}
