package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError carries the HTTP status and the server-provided message for a
// non-2xx response. The message may be empty when the server sent no
// envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsNotFound reports whether err is a 404 response. The assessment existence
// probe treats this as a valid negative result, not a failure.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
