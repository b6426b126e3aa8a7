package types

import "errors"

// Storage lifecycle errors.
var (
	ErrStorageUnavailable = errors.New("storage is unavailable")
	ErrQueryFailed        = errors.New("query failed")
)

// Record operation errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidID   = errors.New("invalid record ID")
	ErrValidation  = errors.New("validation failed")
	ErrKindUnknown = errors.New("unknown record kind")
)

// Pairing errors.
var (
	ErrDuplicatePair = errors.New("client and material are already paired")
)
