package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_DRIVER", "DATABASE_URL", "PORT", "AUTO_MIGRATE",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CACHE_TTL", "LOG_LEVEL",
	} {
		// Setenv registers the restore, Unsetenv makes the key missing.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", "file:users.db")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "sqlite3", cfg.DatabaseDriver)
	assert.Equal(t, "file:users.db", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")
	t.Setenv("AUTO_MIGRATE", "maybe")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.AutoMigrate)
}
