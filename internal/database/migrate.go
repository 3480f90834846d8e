package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// goose keeps its dialect and filesystem in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sql.DB, driver string, log *slog.Logger) error {
	return withGoose(driver, log, func() error {
		runCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		log.Info("applying migrations", "driver", driver)
		if err := goose.UpContext(runCtx, db, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		log.Info("migrations applied")
		return nil
	})
}

// Rollback reverts the most recently applied migration.
func Rollback(ctx context.Context, db *sql.DB, driver string, log *slog.Logger) error {
	return withGoose(driver, log, func() error {
		log.Info("rolling back last migration", "driver", driver)
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("rollback migration: %w", err)
		}
		return nil
	})
}

// Status logs the state of every known migration.
func Status(ctx context.Context, db *sql.DB, driver string, log *slog.Logger) error {
	return withGoose(driver, log, func() error {
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
		return nil
	})
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	var version int64
	err := withGoose(driver, nil, func() error {
		v, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			return fmt.Errorf("migration version: %w", err)
		}
		version = v
		return nil
	})
	return version, err
}

// withGoose configures goose's globals for driver and runs fn. A nil log
// silences goose.
func withGoose(driver string, log *slog.Logger, fn func() error) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(newGooseLogger(log))
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("configure goose: %w", err)
	}
	return fn()
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres, DriverPgx:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
