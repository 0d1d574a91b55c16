package measurements

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, email, gender, height_cm, chest_cm, waist_cm, hips_cm, arm_cm, leg_cm, bicep_cm, thigh_cm,
       mannequin_status, mannequin_url, mannequin_generated_at, created_at`

// Create inserts a new measurement record.
func (r *PGRepo) Create(ctx context.Context, m Measurement) error {
	const query = `
INSERT INTO user_measurements (
    id,
    email,
    gender,
    height_cm,
    chest_cm,
    waist_cm,
    hips_cm,
    arm_cm,
    leg_cm,
    bicep_cm,
    thigh_cm,
    mannequin_status,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'absent', $12)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		m.ID,
		m.Email,
		nullString(m.Gender),
		m.HeightCM,
		nullFloat(m.ChestCM),
		nullFloat(m.WaistCM),
		nullFloat(m.HipsCM),
		nullFloat(m.ArmCM),
		nullFloat(m.LegCM),
		nullFloat(m.BicepCM),
		nullFloat(m.ThighCM),
		m.CreatedAt,
	)
	return err
}

// GetByID loads one record. Ids that are not UUIDs cannot exist.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Measurement, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Measurement{}, ErrNotFound
	}
	query := `SELECT ` + selectColumns + ` FROM user_measurements WHERE id = $1`
	m, err := scanMeasurement(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Measurement{}, ErrNotFound
		}
		return Measurement{}, err
	}
	return m, nil
}

// List returns records newest first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Measurement, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + selectColumns + ` FROM user_measurements ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkGenerated sets the generated status and URL in a single statement.
func (r *PGRepo) MarkGenerated(ctx context.Context, id, url string, at time.Time) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	const query = `
UPDATE user_measurements
SET mannequin_status = 'generated',
    mannequin_url = $2,
    mannequin_generated_at = $3
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, url, at)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row rowScanner) (Measurement, error) {
	var m Measurement
	var gender sql.NullString
	var chest, waist, hips, arm, leg, bicep, thigh sql.NullFloat64
	var status string
	var url sql.NullString
	var generatedAt sql.NullTime
	if err := row.Scan(
		&m.ID,
		&m.Email,
		&gender,
		&m.HeightCM,
		&chest,
		&waist,
		&hips,
		&arm,
		&leg,
		&bicep,
		&thigh,
		&status,
		&url,
		&generatedAt,
		&m.CreatedAt,
	); err != nil {
		return Measurement{}, err
	}
	if gender.Valid {
		m.Gender = &gender.String
	}
	m.ChestCM = floatPtr(chest)
	m.WaistCM = floatPtr(waist)
	m.HipsCM = floatPtr(hips)
	m.ArmCM = floatPtr(arm)
	m.LegCM = floatPtr(leg)
	m.BicepCM = floatPtr(bicep)
	m.ThighCM = floatPtr(thigh)
	switch MannequinStatus(status) {
	case StatusAbsent, StatusGenerated:
		m.MannequinStatus = MannequinStatus(status)
	default:
		return Measurement{}, fmt.Errorf("unknown mannequin status %q", status)
	}
	if url.Valid {
		m.MannequinURL = &url.String
	}
	if generatedAt.Valid {
		m.LastGeneratedAt = &generatedAt.Time
	}
	return m, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
