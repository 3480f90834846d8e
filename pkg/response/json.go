package response

import (
	"encoding/json"
	"net/http"
)

// APIError is the body of every non-2xx response
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"error"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Message is a confirmation body for operations without a resource to return
type Message struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// JSON sends data as the JSON response body with the given status code
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(data)
}

// Error sends an error JSON response
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, APIError{
		StatusCode: status,
		Code:       code,
		Message:    message,
	})
}

// ValidationError sends a 400 with per-field details
func ValidationError(w http.ResponseWriter, details any) {
	JSON(w, http.StatusBadRequest, APIError{
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Message:    "Invalid request data",
		Details:    details,
	})
}

// Common error responses
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, "CONFLICT", message)
}
