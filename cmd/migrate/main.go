package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/fkhayef/usersapi/internal/config"
	"github.com/fkhayef/usersapi/internal/database"
	"github.com/fkhayef/usersapi/pkg/logger"
)

func main() {
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		usage()
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logg := logger.New("users-migrate", logger.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	switch args[0] {
	case "up":
		err = database.Migrate(ctx, db, cfg.DatabaseDriver, logg)
	case "down":
		err = database.Rollback(ctx, db, cfg.DatabaseDriver, logg)
	case "status":
		err = database.Status(ctx, db, cfg.DatabaseDriver, logg)
	case "version":
		var version int64
		version, err = database.Version(ctx, db, cfg.DatabaseDriver)
		if err == nil {
			logg.Info("current schema version", "version", version)
		}
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		logg.Error("migration command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command>

Commands:
  up        apply all pending migrations
  down      roll back the most recent migration
  status    print the status of every migration
  version   print the current schema version

Environment:
  DATABASE_DRIVER   postgres | pgx | sqlite3
  DATABASE_URL      connection string`)
}
