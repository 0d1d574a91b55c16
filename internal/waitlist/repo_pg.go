package waitlist

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a signup; the unique index on lower(email) rejects duplicates.
func (r *PGRepo) Create(ctx context.Context, s Signup) error {
	const query = `INSERT INTO waitlist (id, email, source, created_at) VALUES ($1, $2, $3, $4)`

	var source sql.NullString
	if s.Source != "" {
		source = sql.NullString{String: s.Source, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Email, source, s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyJoined
		}
		return err
	}
	return nil
}

// Count returns the number of signups.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM waitlist`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
