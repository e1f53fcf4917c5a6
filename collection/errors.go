package collection

import "errors"

// Sentinel errors. Operators wrap them with context, so compare with errors.Is.
var (
	// ErrEmptyCollection is returned when an operator needs at least one element.
	ErrEmptyCollection = errors.New("collection: empty collection")
	// ErrNotFound is returned when no element (or record field) matches.
	ErrNotFound = errors.New("collection: not found")
	// ErrTypeMismatch is returned when an element does not have the shape an
	// operator requires.
	ErrTypeMismatch = errors.New("collection: type mismatch")
)
