package main

// Run database migrations:
//   go run ./cmd/migrate up
//   go run ./cmd/migrate status

import (
	"context"
	"database/sql"
	"os"

	"github.com/spf13/cobra"

	"fitcheck-backend/internal/shared/config"
	"fitcheck-backend/internal/shared/storage/db"
	"fitcheck-backend/internal/shared/telemetry"
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Apply or inspect the embedded database migrations",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, sqlDB *sql.DB) error {
			if err := db.RunMigrations(ctx, sqlDB); err != nil {
				return err
			}
			telemetry.Info("migrate.up_complete", nil)
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the applied state of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), db.MigrationStatus)
	},
}

func withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	return fn(ctx, sqlDB)
}

func main() {
	rootCmd.AddCommand(upCmd, statusCmd)
	// Bare invocation keeps the old behaviour of applying migrations.
	rootCmd.RunE = upCmd.RunE

	err := rootCmd.ExecuteContext(context.Background())
	telemetry.Sync()
	if err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		os.Exit(1)
	}
}
