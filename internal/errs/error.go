package errs

import (
	"errors"
)

var (
	// ErrNotFound: a referenced copy/patron/loan/request/subscription does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState: the entity is not in the state the operation requires.
	ErrInvalidState = errors.New("invalid state")
	// ErrConflict: a business uniqueness rule is violated, e.g. a duplicate
	// pending request. Kept apart from ErrInvalidState so clients can say
	// "you already have a pending request".
	ErrConflict = errors.New("conflict")
	// ErrCorrupt: an internal invariant does not hold. The surrounding
	// transaction must be rolled back in full.
	ErrCorrupt = errors.New("corrupt state")
)
