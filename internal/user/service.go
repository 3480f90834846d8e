package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/usersapi/pkg/response"
)

// Common errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrMissingFields     = errors.New("email and username are required fields")
	ErrInvalidBirthdate  = errors.New("birthdate must be a valid date (YYYY-MM-DD)")
)

// Store is the persistence the service depends on. Lookups return (nil, nil)
// when no user matches.
type Store interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit int) ([]*User, error)
	UpdateUsername(ctx context.Context, email, username string, updatedAt time.Time) (*User, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ListUsersResult is a page of users. TotalCount is the size of Users, not of the table.
type ListUsersResult struct {
	TotalCount int
	Users      []*User
}

// Service handles user business logic
type Service struct {
	store    Store
	defaults DefaultsGenerator
	log      *slog.Logger
}

// NewService creates a new user service with its dependencies injected
func NewService(store Store, defaults DefaultsGenerator, log *slog.Logger) *Service {
	return &Service{store: store, defaults: defaults, log: log}
}

// ListUsers returns up to limit users; limit <= 0 returns all of them.
func (s *Service) ListUsers(ctx context.Context, limit int) (*ListUsersResult, error) {
	users, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &ListUsersResult{
		TotalCount: len(users),
		Users:      users,
	}, nil
}

// GetUserByEmail retrieves a user by email
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrUserNotFound)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID
func (s *Service) GetUserByID(ctx context.Context, id string) (*User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user with id %s: %w", id, ErrUserNotFound)
	}
	return user, nil
}

// CreateUser creates a new user, filling in avatar and birthdate when absent
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Username) == "" {
		return nil, ErrMissingFields
	}

	var birthdate time.Time
	if req.Birthdate != nil && *req.Birthdate != "" {
		parsed, err := time.Parse(dateLayout, *req.Birthdate)
		if err != nil {
			return nil, ErrInvalidBirthdate
		}
		birthdate = parsed
	} else {
		birthdate = s.defaults.Birthdate()
	}

	var avatar string
	if req.Avatar != nil && *req.Avatar != "" {
		avatar = *req.Avatar
	} else {
		avatar = s.defaults.Avatar()
	}

	// Check if email is already in use
	existing, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s: %w", req.Email, ErrEmailAlreadyInUse)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := &User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Avatar:    &avatar,
		Birthdate: &birthdate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyInUse) {
			return nil, fmt.Errorf("user with email %s: %w", req.Email, ErrEmailAlreadyInUse)
		}
		return nil, err
	}

	s.log.Info("user created", "id", user.ID, "email", user.Email)
	return user, nil
}

// DeleteAllUsers removes every user
func (s *Service) DeleteAllUsers(ctx context.Context) (*response.Message, error) {
	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Info("all users deleted", "count", deleted)
	return &response.Message{
		Status:  http.StatusOK,
		Message: "All users have been deleted",
	}, nil
}

// DeleteUserByEmail removes the user with the given email
func (s *Service) DeleteUserByEmail(ctx context.Context, email string) (*response.Message, error) {
	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrUserNotFound)
	}

	deleted, err := s.store.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	// removed by a concurrent request between the lookup and the delete
	if !deleted {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrUserNotFound)
	}

	s.log.Info("user deleted", "email", email)
	return &response.Message{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("User with email %s has been deleted", email),
	}, nil
}

// UpdateUsernameByEmail changes the username of the user with the given email
func (s *Service) UpdateUsernameByEmail(ctx context.Context, email, username string) (*User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(username) == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrUserNotFound)
	}

	updated, err := s.store.UpdateUsername(ctx, email, username, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrUserNotFound)
	}

	return updated, nil
}
