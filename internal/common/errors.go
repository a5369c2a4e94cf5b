// Package common defines shared constants and sentinel errors used across
// client and server layers of the portal. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Login outcomes. Kept distinct so callers can tell which check failed
	// even when the UI shows a single message.
	ErrorEntityNotFound     = errors.New("entity not found")
	ErrorInvalidCredentials = errors.New("incorrect password")

	// Storage errors.
	ErrorStorageUnavailable = errors.New("storage unavailable")
	ErrorPartialWrite       = errors.New("partial write")

	// Roster feed errors. Rows carrying this error are skipped, never fatal.
	ErrorMalformedFeedRow = errors.New("malformed feed row")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
