package repository

import "errors"

// ErrNotFound is returned by every storage driver when the requested row
// does not exist. Callers that treat absence differently from a storage
// failure must check with IsNotFound before falling back.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err means the row was absent.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
