package surveys

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a survey result.
func (r *PGRepo) Create(ctx context.Context, resp Response) error {
	const query = `
INSERT INTO survey_results (
    id,
    identity,
    body_shape,
    size,
    fit_issues,
    shop_for,
    fabric_drape,
    ar_used,
    ar_experience_rating,
    ar_method,
    mannequin_used,
    mannequin_helpful,
    extra_notes,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var fitIssues any
	if resp.FitIssues != nil {
		raw, err := json.Marshal(resp.FitIssues)
		if err != nil {
			return fmt.Errorf("encode fit issues: %w", err)
		}
		fitIssues = raw
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resp.ID,
		nullString(resp.Identity),
		nullString(resp.BodyShape),
		nullString(resp.Size),
		fitIssues,
		nullString(resp.ShopFor),
		nullString(resp.FabricDrape),
		nullBool(resp.ARUsed),
		nullInt(resp.ARExperienceRating),
		nullString(resp.ARMethod),
		nullBool(resp.MannequinUsed),
		nullBool(resp.MannequinHelpful),
		nullString(resp.ExtraNotes),
		resp.CreatedAt,
	)
	return err
}

// List returns results newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Response, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, identity, body_shape, size, fit_issues, shop_for, fabric_drape, ar_used, ar_experience_rating,
       ar_method, mannequin_used, mannequin_helpful, extra_notes, created_at
FROM survey_results
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Response{}
	for rows.Next() {
		var resp Response
		var identity, bodyShape, size, shopFor, fabricDrape, arMethod, notes sql.NullString
		var fitIssues []byte
		var arUsed, mannequinUsed, mannequinHelpful sql.NullBool
		var rating sql.NullInt64
		if err := rows.Scan(
			&resp.ID,
			&identity,
			&bodyShape,
			&size,
			&fitIssues,
			&shopFor,
			&fabricDrape,
			&arUsed,
			&rating,
			&arMethod,
			&mannequinUsed,
			&mannequinHelpful,
			&notes,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(fitIssues) > 0 {
			if err := json.Unmarshal(fitIssues, &resp.FitIssues); err != nil {
				return nil, fmt.Errorf("decode fit issues: %w", err)
			}
		}
		resp.Identity = stringPtr(identity)
		resp.BodyShape = stringPtr(bodyShape)
		resp.Size = stringPtr(size)
		resp.ShopFor = stringPtr(shopFor)
		resp.FabricDrape = stringPtr(fabricDrape)
		resp.ARMethod = stringPtr(arMethod)
		resp.ExtraNotes = stringPtr(notes)
		resp.ARUsed = boolPtr(arUsed)
		resp.MannequinUsed = boolPtr(mannequinUsed)
		resp.MannequinHelpful = boolPtr(mannequinHelpful)
		if rating.Valid {
			n := int(rating.Int64)
			resp.ARExperienceRating = &n
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func boolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}
