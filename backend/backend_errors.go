package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUnauthorized = errors.New("not authenticated")

var ErrForbidden = errors.New("forbidden")

var ErrNotFound = errors.New("not found")

// APIError is a non 2xx answer from the backend. Message is the server's own
// error text when the body carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend request failed with status %d", e.Status)
	}
	return fmt.Sprintf("backend request failed with status %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}
