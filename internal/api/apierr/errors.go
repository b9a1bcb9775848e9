package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bankrollhq/bankroll/internal/model"
)

// ErrorResponse is the wire shape for all error responses.
// The frontend only consumes a flat message string.
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with a response message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, "Room not found"}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, "Name is required"}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusBadRequest, "Insufficient funds"}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, "Amount must be a positive number"}
	case errors.Is(err, model.ErrInvalidTransfer):
		return &httpError{http.StatusBadRequest, "Invalid transfer data"}

	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
