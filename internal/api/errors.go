// internal/api/errors.go
package api

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the remote commerce API
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: error code %d", e.StatusCode)
}

// StatusOf extracts the HTTP status from an error chain, 0 if none
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
