package mannequins

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"fitcheck-backend/internal/measurements"
	"fitcheck-backend/internal/shared/metrics"
	"fitcheck-backend/internal/shared/storage/object"
	"fitcheck-backend/internal/shared/telemetry"
	"fitcheck-backend/internal/shared/util"
)

// ContentType is stored with every mannequin asset.
const ContentType = "model/gltf-binary"

// AssetKey is the storage key for a measurement's mannequin.
func AssetKey(measurementID string) string {
	return measurementID + "/mannequin.glb"
}

// Records is the slice of the measurements store the pipeline needs.
type Records interface {
	GetByID(ctx context.Context, id string) (measurements.Measurement, error)
	MarkGenerated(ctx context.Context, id, url string, at time.Time) error
}

// Service runs the mannequin pipeline: load, generate, store, resolve URL, mark generated.
type Service struct {
	Records   Records
	Generator Generator
	Store     object.Store
	Now       func() time.Time

	inflight singleflight.Group
}

// NewService constructs a Service.
func NewService(records Records, gen Generator, store object.Store) *Service {
	return &Service{
		Records:   records,
		Generator: gen,
		Store:     store,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// Generate produces and stores a mannequin for id and returns its public URL.
// The generator is called once; there are no retries. Concurrent calls for the
// same id share one run. The shared run is detached from the caller's
// cancellation so one disconnecting client cannot fail the others; the
// generator client timeout still bounds it.
func (s *Service) Generate(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalidInput
	}

	runCtx := context.WithoutCancel(ctx)
	v, err, _ := s.inflight.Do(id, func() (any, error) {
		return s.generate(runCtx, id)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Service) generate(ctx context.Context, id string) (string, error) {
	start := time.Now()
	metrics.IncGenerationStarted()

	url, err := s.runGenerate(ctx, id)
	metrics.ObserveGenerationDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncGenerationFailed(stepOf(err))
		s.logFailure("mannequin.generate_failed", id, err)
		return "", err
	}

	metrics.IncGenerationCompleted()
	telemetry.Info("mannequin.generated", map[string]any{
		"measurement_id": id,
		"url":            url,
		"duration_ms":    metrics.SinceMillis(start),
	})
	return url, nil
}

func (s *Service) runGenerate(ctx context.Context, id string) (string, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}

	body, err := s.Generator.Generate(ctx, RequestFor(m))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	defer body.Close()

	return s.storeAndMark(ctx, id, body)
}

// Upload stores an operator-provided asset for id. Names not ending in .glb
// are rejected before storage is touched.
func (s *Service) Upload(ctx context.Context, id, fileName string, r io.Reader) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalidInput
	}
	// The name only gates the upload; the storage key comes from id.
	if !strings.HasSuffix(fileName, ".glb") {
		return "", ErrInvalidAsset
	}
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		name = ""
	}

	if _, err := s.load(ctx, id); err != nil {
		s.logFailure("mannequin.upload_failed", id, err)
		return "", err
	}

	url, err := s.storeAndMark(ctx, id, r)
	if err != nil {
		s.logFailure("mannequin.upload_failed", id, err)
		return "", err
	}

	metrics.IncUploads()
	telemetry.Info("mannequin.uploaded", map[string]any{
		"measurement_id": id,
		"file_name":      name,
		"url":            url,
	})
	return url, nil
}

func (s *Service) load(ctx context.Context, id string) (measurements.Measurement, error) {
	m, err := s.Records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, measurements.ErrNotFound) {
			return measurements.Measurement{}, ErrNotFound
		}
		return measurements.Measurement{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return m, nil
}

// storeAndMark writes the asset, resolves its URL and flips the record in one
// update. If the update fails the asset stays in place and the next run
// overwrites it.
func (s *Service) storeAndMark(ctx context.Context, id string, r io.Reader) (string, error) {
	key := AssetKey(id)
	if _, err := s.Store.Put(ctx, key, ContentType, r); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorageFailed, err)
	}

	url, err := s.Store.PublicURL(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublicURLFailed, err)
	}
	if strings.TrimSpace(url) == "" {
		return "", ErrPublicURLFailed
	}

	if err := s.Records.MarkGenerated(ctx, id, url, s.Now()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	return url, nil
}

func (s *Service) logFailure(event, id string, err error) {
	step := stepOf(err)
	if step == "validate" || errors.Is(err, ErrNotFound) {
		telemetry.Warn(event, map[string]any{"measurement_id": id, "step": step, "error": err})
		return
	}
	telemetry.Error(event, map[string]any{"measurement_id": id, "step": step, "error": err})
}
