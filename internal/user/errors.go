package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the given email.
	ErrNotFound = errors.New("user not found")

	// ErrEmailExists is returned when an insert violates the unique email index.
	ErrEmailExists = errors.New("email already exists")
)
