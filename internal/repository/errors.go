package repository

import "errors"

// Store errors. Backends translate driver failures into these so services and the HTTP layer
// can match them with errors.Is regardless of the storage driver.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict is a write that lost to a concurrent one or broke a store constraint.
	ErrConflict = errors.New("conflict")
)
