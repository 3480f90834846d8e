package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/fkhayef/usersapi/internal/config"
	"github.com/fkhayef/usersapi/internal/database"
	"github.com/fkhayef/usersapi/internal/seed"
	"github.com/fkhayef/usersapi/internal/user"
	"github.com/fkhayef/usersapi/pkg/logger"
)

func main() {
	count := flag.Int("n", seed.DefaultCount, "number of users to create")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logg := logger.New("users-seed", logger.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db, cfg.DatabaseDriver, logg); err != nil {
			logg.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	store, closeStore, err := user.NewStore(ctx, db, cfg, logg)
	if err != nil {
		logg.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	users, err := seed.Run(ctx, store, user.FakeDefaults{}, *count, logg)
	if err != nil {
		logg.Error("seeding failed", "error", err, "created", len(users))
		os.Exit(1)
	}

	logg.Info("successfully seeded users", "count", len(users))
}
