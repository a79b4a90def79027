package repository

import "errors"

var (
	// ErrNotFound is returned when an id does not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a store-level uniqueness constraint is
	// violated, e.g. a duplicate admin username or email.
	ErrConflict = errors.New("conflict")
)
