package repositories

import "errors"

var (
	// ErrNotFound is returned when a record with the given id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert hits a uniqueness constraint
	// (duplicate email on signup, second application for the same pair).
	ErrDuplicate = errors.New("duplicate record")
)
