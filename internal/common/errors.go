// Package common defines shared constants and sentinel errors used across
// the MycoMarket client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Session lifecycle errors.
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")

	// Validation errors (detected client-side, before dispatch).
	ErrValidation = errors.New("validation error")
)
