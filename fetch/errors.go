package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the fetch client.
var (
	// ErrFetchFailed wraps every failure to retrieve a catalog.
	ErrFetchFailed = errors.New("failed to fetch catalog")

	// ErrInvalidJSON indicates the response body is not a JSON document.
	ErrInvalidJSON = errors.New("response is not valid JSON")
)

// StatusError represents a non-2xx response
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status from %s: %s", e.URL, e.Status)
}

// Temporary reports whether retrying the request could succeed
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}
