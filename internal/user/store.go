package user

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/fkhayef/usersapi/internal/config"
	"github.com/fkhayef/usersapi/pkg/cache"
)

// EmailCachePrefix is the Redis key prefix for users cached by email.
const EmailCachePrefix = "users:email:"

// NewStore builds the Store every binary writes through: the SQL repository,
// fronted by the Redis email cache when cfg enables it. The returned close
// func releases the Redis client and is never nil.
func NewStore(ctx context.Context, db *sql.DB, cfg *config.Config, log *slog.Logger) (Store, func(), error) {
	repo := NewRepository(db)
	if !cfg.CacheEnabled() {
		return repo, func() {}, nil
	}

	rdb, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	byEmail := cache.NewViewCache[User](rdb, EmailCachePrefix, cfg.CacheTTL, log)
	log.Info("user cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	return NewCachedStore(repo, byEmail), func() { _ = rdb.Close() }, nil
}
