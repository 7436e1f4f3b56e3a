// Package common defines shared sentinel errors used across the client and
// server layers of the login service. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorValidation   = errors.New("validation error")
	ErrorWeakPassword = errors.New("weak password")

	// Auth errors (invalid, malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")

	// Configuration errors (fatal at startup).
	ErrMissingSecretKey = errors.New("missing secret key")
)
