package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/fkhayef/usersapi/internal/user"
)

// DefaultCount is the number of users created when no count is given.
const DefaultCount = 100

// Run clears every user from store and inserts n fake ones. It returns the
// created users.
func Run(ctx context.Context, store user.Store, defaults user.DefaultsGenerator, n int, log *slog.Logger) ([]*user.User, error) {
	if n < 0 {
		return nil, fmt.Errorf("seed count must not be negative, got %d", n)
	}

	deleted, err := store.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}
	log.Info("cleared existing users", "count", deleted)

	seen := make(map[string]struct{}, n)
	users := make([]*user.User, 0, n)
	for len(users) < n {
		email := gofakeit.Email()
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}

		avatar := defaults.Avatar()
		birthdate := defaults.Birthdate()
		now := time.Now().UTC().Truncate(time.Microsecond)
		u := &user.User{
			ID:        uuid.NewString(),
			Username:  gofakeit.Username(),
			Email:     email,
			Avatar:    &avatar,
			Birthdate: &birthdate,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.Create(ctx, u); err != nil {
			return users, fmt.Errorf("failed to seed user %s: %w", email, err)
		}
		users = append(users, u)
	}

	log.Info("seeded users", "count", len(users))
	return users, nil
}
