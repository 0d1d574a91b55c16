package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcheck-backend/internal/bootstrap"
	"fitcheck-backend/internal/shared/config"
	"fitcheck-backend/internal/shared/server"
	"fitcheck-backend/internal/shared/storage/db"
	"fitcheck-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("api.bootstrap_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer app.Close()

	if app.DB != nil && os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.RunMigrations(context.Background(), app.DB); err != nil {
			telemetry.Error("api.migrations_failed", map[string]any{"error": err})
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("api.listening", map[string]any{"addr": srv.Addr, "env": cfg.Env, "store": cfg.ObjectStoreType})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			telemetry.Error("api.server_error", map[string]any{"error": err})
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			telemetry.Error("api.shutdown_failed", map[string]any{"error": err})
		}
		telemetry.Info("api.stopped", nil)
	}
}
