package repository

import "errors"

var (
	// ErrNotFound is returned when no record exists for the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when an id is not syntactically addressable
	// (not a UUID). It is checked before any query runs.
	ErrInvalidID = errors.New("invalid id")
)
