// Package common defines shared constants, sentinel errors and small helpers
// used across Life Mentor client components. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Resource-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Client-side validation errors, surfaced before any network call.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
