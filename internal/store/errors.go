package store

import "errors"

// ErrRecordNotFound is returned by lookups of a single row that does not exist.
var ErrRecordNotFound = errors.New("record not found")
