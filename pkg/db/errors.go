package db

import "errors"

var (
	// ErrNotFound indicates the referenced row does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a write violated a unique constraint
	// (duplicate template or position name)
	ErrConflict = errors.New("already exists")
)
