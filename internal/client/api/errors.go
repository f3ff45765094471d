package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks network failures and 5xx responses; the
	// request may succeed if retried later.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized marks missing, expired or insufficient credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks requests for entities that do not exist.
	ErrNotFound = errors.New("not found")
)

// APIError is a failure reported by the backend. Message is the
// backend-provided text, FieldErrors the per-field validation map
// (nil unless the backend rejected individual input fields).
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is maps HTTP status classes onto the package sentinel errors so that
// callers can match with errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnavailable:
		return e.StatusCode >= 500
	}
	return false
}

// FieldErrorsOf extracts the validation map from err, or nil when err
// carries none.
func FieldErrorsOf(err error) map[string]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.FieldErrors
	}
	return nil
}

// MessageOf returns the backend message from err, falling back to the
// given default for network and unknown failures.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
