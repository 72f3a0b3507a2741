// Package sentinel defines the storage-level errors shared by every zoo store
// backend. Stores wrap them with %w; services map them onto domain errors.
// Input validation belongs in pkg/domain-errors, not here.
package sentinel

import "errors"

var (
	// ErrNotFound means no row or document exists for the id.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyUsed means a unique zone name is taken.
	ErrAlreadyUsed = errors.New("already used")
	// ErrInvalidState means a zone reference was missing or still held.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnavailable means the backing store did not answer.
	ErrUnavailable = errors.New("unavailable")
)
