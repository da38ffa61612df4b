package listing

import "errors"

// ErrNotFound is returned when a listing ID does not exist.
var ErrNotFound = errors.New("listing not found")
