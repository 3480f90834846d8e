package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUsers(t *testing.T, svc *Service, n int) []*User {
	t.Helper()
	users := make([]*User, 0, n)
	for i := 0; i < n; i++ {
		u, err := svc.CreateUser(context.Background(), &CreateUserRequest{
			Username: fmt.Sprintf("user%d", i),
			Email:    fmt.Sprintf("user%d@example.com", i),
		})
		require.NoError(t, err)
		users = append(users, u)
	}
	return users
}

func TestService_CreateThenGetByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, &CreateUserRequest{
		Username:  "johndoe",
		Email:     "john.doe@example.com",
		Avatar:    strPtr("https://example.com/avatar.jpg"),
		Birthdate: strPtr("1985-12-24"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	got, err := svc.GetUserByEmail(ctx, "john.doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "johndoe", got.Username)
	require.NotNil(t, got.Avatar)
	assert.Equal(t, "https://example.com/avatar.jpg", *got.Avatar)
	require.NotNil(t, got.Birthdate)
	assert.Equal(t, "1985-12-24", got.Birthdate.Format(dateLayout))
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	byID, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", byID.Email)
}

func TestService_CreateAssignsDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Username: "janedoe",
		Email:    "jane@example.com",
		Avatar:   strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Avatar)
	assert.Equal(t, testAvatar, *created.Avatar)
	require.NotNil(t, created.Birthdate)
	assert.Equal(t, testBirthdate, created.Birthdate.Format(dateLayout))
}

func TestService_CreateMissingFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, req := range []*CreateUserRequest{
		nil,
		{Username: "johndoe"},
		{Email: "john@example.com"},
		{Username: "  ", Email: "john@example.com"},
	} {
		_, err := svc.CreateUser(ctx, req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestService_CreateInvalidBirthdate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Username:  "johndoe",
		Email:     "john@example.com",
		Birthdate: strPtr("24/12/1985"),
	})
	assert.ErrorIs(t, err, ErrInvalidBirthdate)
}

func TestService_CreateDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := &CreateUserRequest{Username: "johndoe", Email: "john@example.com"}
	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "other", Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
	assert.Contains(t, err.Error(), "john@example.com")
}

func TestService_GetMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetUserByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetUserByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_ListUsers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createUsers(t, svc, 3)

	all, err := svc.ListUsers(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)
	assert.Len(t, all.Users, 3)

	limited, err := svc.ListUsers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, limited.TotalCount)
	assert.Len(t, limited.Users, 2)
}

func TestService_DeleteAllThenListIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createUsers(t, svc, 2)

	msg, err := svc.DeleteAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, msg.Status)
	assert.Equal(t, "All users have been deleted", msg.Message)

	result, err := svc.ListUsers(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCount)
	assert.NotNil(t, result.Users)
	assert.Empty(t, result.Users)

	// deleting an empty table still succeeds
	_, err = svc.DeleteAllUsers(ctx)
	require.NoError(t, err)
}

func TestService_DeleteUserByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createUsers(t, svc, 2)

	msg, err := svc.DeleteUserByEmail(ctx, "user0@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, msg.Status)
	assert.Equal(t, "User with email user0@example.com has been deleted", msg.Message)

	_, err = svc.GetUserByEmail(ctx, "user0@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.DeleteUserByEmail(ctx, "user0@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	remaining, err := svc.ListUsers(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining.TotalCount)
}

func TestService_UpdateUsernamePreservesIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	original := createUsers(t, svc, 1)[0]

	time.Sleep(2 * time.Millisecond)
	updated, err := svc.UpdateUsernameByEmail(ctx, original.Email, "renamed")
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.Email, updated.Email)
	assert.Equal(t, *original.Avatar, *updated.Avatar)
	assert.Equal(t, original.Birthdate.Format(dateLayout), updated.Birthdate.Format(dateLayout))
	assert.True(t, original.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))
}

func TestService_UpdateUsernameErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateUsernameByEmail(ctx, "", "name")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.UpdateUsernameByEmail(ctx, "a@example.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.UpdateUsernameByEmail(ctx, "ghost@example.com", "name")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// failingStore fails every call with err.
type failingStore struct{ err error }

func (f failingStore) Create(context.Context, *User) error                 { return f.err }
func (f failingStore) GetByID(context.Context, string) (*User, error)      { return nil, f.err }
func (f failingStore) GetByEmail(context.Context, string) (*User, error)   { return nil, f.err }
func (f failingStore) List(context.Context, int) ([]*User, error)          { return nil, f.err }
func (f failingStore) DeleteByEmail(context.Context, string) (bool, error) { return false, f.err }
func (f failingStore) DeleteAll(context.Context) (int64, error)            { return 0, f.err }
func (f failingStore) UpdateUsername(context.Context, string, string, time.Time) (*User, error) {
	return nil, f.err
}

func TestService_StoreErrorsPropagate(t *testing.T) {
	dbErr := errors.New("database error")
	svc := NewService(failingStore{err: dbErr}, fixedDefaults{}, discardLogger())
	ctx := context.Background()

	_, err := svc.ListUsers(ctx, 0)
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.GetUserByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.GetUserByID(ctx, "id")
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "a", Email: "a@example.com"})
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.DeleteAllUsers(ctx)
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.DeleteUserByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, dbErr)

	_, err = svc.UpdateUsernameByEmail(ctx, "a@example.com", "b")
	assert.ErrorIs(t, err, dbErr)
}
