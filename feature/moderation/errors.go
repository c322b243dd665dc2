package moderation

import "errors"

var (
	// ErrRequestNotFound is returned when no moderation request exists for an id.
	ErrRequestNotFound = errors.New("moderation request not found")

	// ErrInvalidRequestID is returned for ids that cannot name a request.
	ErrInvalidRequestID = errors.New("invalid moderation request id")

	// ErrInvalidSnapshot is returned when a snapshot cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrSchemaMismatch is returned when required columns are missing.
	ErrSchemaMismatch = errors.New("database schema mismatch")
)
