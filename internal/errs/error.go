package errs

import (
	"errors"
)

var (
	// ErrNotFound: the referenced book, copy, loan, reservation or fine does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a business rule rejected the transition (limit reached, wrong
	// state, copy unavailable, duplicate active reservation).
	ErrConflict = errors.New("conflict")
	// ErrForbidden: the requestor has no rights over the target resource.
	ErrForbidden = errors.New("forbidden")
	// ErrUserName is returned when the identity header is missing.
	ErrUserName = errors.New("username is required")
)
