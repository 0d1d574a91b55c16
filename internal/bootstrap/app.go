package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"fitcheck-backend/internal/mannequins"
	"fitcheck-backend/internal/measurements"
	"fitcheck-backend/internal/products"
	"fitcheck-backend/internal/services/health"
	"fitcheck-backend/internal/shared/config"
	"fitcheck-backend/internal/shared/server"
	"fitcheck-backend/internal/shared/storage/db"
	"fitcheck-backend/internal/shared/storage/object"
	localstore "fitcheck-backend/internal/shared/storage/object/local"
	s3store "fitcheck-backend/internal/shared/storage/object/s3"
	"fitcheck-backend/internal/shared/telemetry"
	"fitcheck-backend/internal/surveys"
	"fitcheck-backend/internal/waitlist"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config       config.Config
	Router       *gin.Engine
	DB           *sql.DB
	Store        object.Store
	ProductCache *products.RedisCache

	MeasurementsService *measurements.Service
	MannequinService    *mannequins.Service
	SurveyService       *surveys.Service
	WaitlistService     *waitlist.Service
	ProductService      *products.Service
	HealthService       *health.Service
}

// Close releases pooled connections.
func (a *App) Close() error {
	var errs []error
	if a.ProductCache != nil {
		errs = append(errs, a.ProductCache.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Store:        store,
		ProductCache: buildProductCache(ctx, cfg),
	}
	buildServices(app)

	deps := server.RouterDeps{
		Config:              cfg,
		Health:              app.HealthService,
		MeasurementsHandler: measurements.NewHandler(app.MeasurementsService),
		MannequinHandler:    mannequins.NewHandler(app.MannequinService),
		SurveyHandler:       surveys.NewHandler(app.SurveyService),
		WaitlistHandler:     waitlist.NewHandler(app.WaitlistService),
		ProductHandler:      products.NewHandler(app.ProductService),
	}
	if local, ok := store.(*localstore.Store); ok {
		deps.Files = local
	}
	app.Router = server.NewRouter(deps)

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.database_url_empty", map[string]any{"fallback": "memory"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.RuntimeOptions())
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.database_connect_failed", map[string]any{"fallback": "memory", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL)
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL+server.FilesPath), nil
	}
}

// buildProductCache is optional; a Redis outage only disables caching.
func buildProductCache(ctx context.Context, cfg config.Config) *products.RedisCache {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil
	}
	cache, err := products.NewRedisCache(ctx, cfg.RedisURL)
	if err != nil {
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"error": err})
		return nil
	}
	return cache
}

func buildServices(app *App) {
	var measurementRepo measurements.Repo
	var surveyRepo surveys.Repo
	var waitlistRepo waitlist.Repo

	if app.DB != nil {
		measurementRepo = &measurements.PGRepo{DB: app.DB}
		surveyRepo = &surveys.PGRepo{DB: app.DB}
		waitlistRepo = &waitlist.PGRepo{DB: app.DB}
	} else {
		measurementRepo = measurements.NewMemoryRepo()
		surveyRepo = surveys.NewMemoryRepo()
		waitlistRepo = waitlist.NewMemoryRepo()
	}

	generator := mannequins.NewHTTPGenerator(app.Config.MannequinServiceURL, app.Config.MannequinTimeout)

	var cache products.Cache
	checks := []health.Check{}
	if app.DB != nil {
		checks = append(checks, health.Check{Name: "database", Pinger: app.DB})
	}
	if app.ProductCache != nil {
		cache = app.ProductCache
		checks = append(checks, health.Check{Name: "cache", Pinger: app.ProductCache})
	}
	extractor := products.NewClient(app.Config.ProductServiceURL, app.Config.ProductTimeout)

	app.MeasurementsService = measurements.NewService(measurementRepo)
	app.MannequinService = mannequins.NewService(measurementRepo, generator, app.Store)
	app.SurveyService = surveys.NewService(surveyRepo)
	app.WaitlistService = waitlist.NewService(waitlistRepo)
	app.ProductService = products.NewService(extractor, cache, app.Config.ProductCacheTTL)
	app.HealthService = health.NewService(checks...)
}
