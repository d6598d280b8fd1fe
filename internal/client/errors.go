package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnavailable wraps transport-level failures: no response was
	// received at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches 401/403 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx server response. Message holds the structured
// message from the body when the server provided one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// newAPIError builds an APIError from a response body, extracting the
// message from a {"message": ...} object when present.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}

// ServerMessage returns the structured message of an APIError, or ""
// when err carries none. Callers use it to prefer server-provided text
// over a generic fallback.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
