package repositories

import "errors"

// Common storage errors. Implementations wrap these so callers can test with
// errors.Is without depending on the underlying driver.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates an insert violated a unique constraint.
	ErrDuplicate = errors.New("duplicate entry")
)
