package user

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fkhayef/usersapi/internal/database"
)

const (
	testAvatar    = "https://avatars.githubusercontent.com/u/42"
	testBirthdate = "1990-06-15"
)

type fixedDefaults struct{}

func (fixedDefaults) Avatar() string { return testAvatar }

func (fixedDefaults) Birthdate() time.Time {
	return time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRepository returns a Repository over a migrated SQLite database.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.DriverSQLite, filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db, database.DriverSQLite, discardLogger()))
	return NewRepository(db)
}

func newTestService(t *testing.T) (*Service, *Repository) {
	t.Helper()
	repo := newTestRepository(t)
	return NewService(repo, fixedDefaults{}, discardLogger()), repo
}

func strPtr(s string) *string { return &s }

func newUser(id, username, email string, createdAt time.Time) *User {
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
