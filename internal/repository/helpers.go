package repository

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
// Callers that want silent no-op semantics check for it with errors.Is.
var ErrNotFound = errors.New("not found")
