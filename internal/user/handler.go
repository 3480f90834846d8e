package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/usersapi/pkg/response"
	"github.com/fkhayef/usersapi/pkg/validation"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service  *Service
	validate *validation.Validator
	log      *slog.Logger
}

// NewHandler creates a new user handler with service dependency injected
func NewHandler(service *Service, validate *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{service: service, validate: validate, log: log}
}

// Routes returns the router for user endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/", h.UpdateUsername)
	r.Delete("/all", h.DeleteAll)
	r.Get("/id/{id}", h.GetByID)
	r.Get("/{email}", h.GetByEmail)
	r.Delete("/{email}", h.DeleteByEmail)

	return r
}

// List handles GET /users
// @Summary      List users
// @Description  Get all users, or the first N users when limit is set
// @Tags         users
// @Produce      json
// @Param        limit query int false "Maximum number of users to return"
// @Success      200 {object} ListUsersResponse
// @Failure      400 {object} response.APIError
// @Router       /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	result, err := h.service.ListUsers(r.Context(), limit)
	if err != nil {
		h.internalError(w, r, "Failed to list users", err)
		return
	}

	response.JSON(w, http.StatusOK, result.ToResponse())
}

// GetByEmail handles GET /users/{email}
// @Summary      Get user
// @Description  Get a single user by email
// @Tags         users
// @Produce      json
// @Param        email path string true "User email"
// @Success      200 {object} UserResponse
// @Failure      404 {object} response.APIError
// @Router       /users/{email} [get]
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUserByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, r, "Failed to get user", err)
		return
	}

	response.JSON(w, http.StatusOK, user.ToResponse())
}

// GetByID handles GET /users/id/{id}
// @Summary      Get user by ID
// @Description  Get a single user by their ID
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} UserResponse
// @Failure      404 {object} response.APIError
// @Router       /users/id/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "Failed to get user", err)
		return
	}

	response.JSON(w, http.StatusOK, user.ToResponse())
}

// Create handles POST /users
// @Summary      Create new user
// @Description  Create a user; avatar and birthdate are generated when omitted
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User creation request"
// @Success      201 {object} UserResponse
// @Failure      400 {object} response.APIError
// @Failure      409 {object} response.APIError
// @Router       /users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if fieldErrors := h.validate.Struct(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, "Failed to create user", err)
		return
	}

	response.JSON(w, http.StatusCreated, user.ToResponse())
}

// DeleteAll handles DELETE /users/all
// @Summary      Delete all users
// @Description  Remove every user record
// @Tags         users
// @Produce      json
// @Success      200 {object} response.Message
// @Router       /users/all [delete]
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.DeleteAllUsers(r.Context())
	if err != nil {
		h.internalError(w, r, "Failed to delete users", err)
		return
	}

	response.JSON(w, http.StatusOK, msg)
}

// DeleteByEmail handles DELETE /users/{email}
// @Summary      Delete a user
// @Description  Delete a user by email
// @Tags         users
// @Produce      json
// @Param        email path string true "User email"
// @Success      200 {object} response.Message
// @Failure      404 {object} response.APIError
// @Router       /users/{email} [delete]
func (h *Handler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}

	msg, err := h.service.DeleteUserByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, r, "Failed to delete user", err)
		return
	}

	response.JSON(w, http.StatusOK, msg)
}

// UpdateUsername handles PATCH /users?email=&username=
// @Summary      Update username
// @Description  Update the username of the user with the given email
// @Tags         users
// @Produce      json
// @Param        email query string true "User email"
// @Param        username query string true "New username"
// @Success      200 {object} UserResponse
// @Failure      400 {object} response.APIError
// @Failure      404 {object} response.APIError
// @Router       /users [patch]
func (h *Handler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	user, err := h.service.UpdateUsernameByEmail(r.Context(), query.Get("email"), query.Get("username"))
	if err != nil {
		h.writeError(w, r, "Failed to update user", err)
		return
	}

	response.JSON(w, http.StatusOK, user.ToResponse())
}

// writeError maps service errors to responses; anything unrecognised is a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fallback string, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrEmailAlreadyInUse):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidBirthdate):
		response.BadRequest(w, err.Error())
	default:
		h.internalError(w, r, fallback, err)
	}
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.log.Error(message, "method", r.Method, "path", r.URL.Path, "error", err)
	response.InternalError(w, message)
}

func emailParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil || email == "" {
		response.BadRequest(w, "Invalid email")
		return "", false
	}
	return email, true
}
