package repository

import "errors"

// ErrNotFound is returned when a record referenced by id does not exist.
// Repositories wrap it with the entity name; callers match with errors.Is.
var ErrNotFound = errors.New("not found")
