// Package common defines shared sentinel errors used across StreamHub
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidInput = errors.New("invalid input")

	// Auth errors (absent, invalid, or malformed token).
	ErrMissingToken = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	// ErrRefreshTokenReused means the presented refresh token no longer
	// matches the stored one: it was rotated, superseded by a later login,
	// or cleared on logout.
	ErrRefreshTokenReused = errors.New("refresh token expired or already used")
)
