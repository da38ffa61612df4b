package gallery

import "errors"

// ErrNotFound is returned when an image ID does not exist.
var ErrNotFound = errors.New("image not found")
