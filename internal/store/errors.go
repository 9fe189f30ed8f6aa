package store

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("backend rejected the request")
	ErrUnavailable         = errors.New("backend unavailable")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	// Message is the backend's own explanation, if it sent one.
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRecordNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConstraintViolation:
		return e.StatusCode == http.StatusBadRequest ||
			e.StatusCode == http.StatusForbidden ||
			e.StatusCode == http.StatusConflict ||
			e.StatusCode == http.StatusUnprocessableEntity
	case ErrUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}
