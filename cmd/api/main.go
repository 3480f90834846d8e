// @title        Users API
// @version      1.0
// @description  REST backend for managing user records.
// @BasePath     /api/v1
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/usersapi/docs"
	"github.com/fkhayef/usersapi/internal/config"
	"github.com/fkhayef/usersapi/internal/database"
	"github.com/fkhayef/usersapi/internal/user"
	"github.com/fkhayef/usersapi/pkg/logger"
	mw "github.com/fkhayef/usersapi/pkg/middleware"
	"github.com/fkhayef/usersapi/pkg/validation"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logg := logger.New("users-api", logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logg.Info("connected to database", "driver", cfg.DatabaseDriver)

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db, cfg.DatabaseDriver, logg); err != nil {
			logg.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// User feature
	userStore, closeStore, err := user.NewStore(ctx, db, cfg, logg)
	if err != nil {
		logg.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	userService := user.NewService(userStore, user.FakeDefaults{}, logg)
	userHandler := user.NewHandler(userService, validation.New(), logg)

	r := newRouter(userHandler, mw.NewMetrics(prometheus.DefaultRegisterer))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logg.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", "error", err)
	}
	logg.Info("server stopped")
}

func newRouter(userHandler *user.Handler, metrics *mw.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	// outside Recoverer so panics are counted as 500s
	r.Use(metrics.Handler)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes())
	})

	return r
}
