package store

import "errors"

var (
	// ErrConflict means a unique constraint (email or username) was violated.
	ErrConflict = errors.New("email or username already exists")

	// ErrNotFound covers both a missing row and a row owned by someone
	// else; callers cannot tell the two apart.
	ErrNotFound = errors.New("record not found")
)
