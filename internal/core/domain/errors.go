package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidNotebook indicates a notebook file could not be parsed.
	ErrInvalidNotebook = errors.New("invalid notebook")

	// ErrExecutionFailed indicates the notebook execution engine failed
	// outright (bad kernel, process crash, timeout). Fatal for that
	// notebook's evaluation: no meaningful partial result exists.
	ErrExecutionFailed = errors.New("notebook execution failed")

	// ErrDictionaryUnavailable indicates the spell-check dictionary could
	// not be loaded.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")
)
