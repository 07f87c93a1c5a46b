package core

import "errors"

// Common errors.
var (
	// ErrConfiguration means the AI gateway has no credential configured.
	ErrConfiguration = errors.New("ai gateway is not configured")
	// ErrGateway covers every other AI gateway failure (transport, status, parsing).
	ErrGateway = errors.New("ai gateway request failed")
	// ErrPersistenceRead marks a stored collection that could not be read back.
	ErrPersistenceRead = errors.New("stored collection is unreadable")

	ErrNotFound       = errors.New("not found")
	ErrDuplicateID    = errors.New("duplicate note id")
	ErrBusy           = errors.New("an ingestion is already in progress")
	ErrEmptyQuery     = errors.New("search query is empty")
	ErrReadOnly       = errors.New("storage is in read-only mode")
	ErrOutOfRange     = errors.New("value out of range")
	ErrInvalidStyle   = errors.New("unknown wine style")
	ErrInvalidSortKey = errors.New("unknown sort key")
	ErrUnknownField   = errors.New("unknown field")
	ErrNotWatchable   = errors.New("storage does not support watching")
)
