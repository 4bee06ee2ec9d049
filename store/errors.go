package store

import "fmt"

var (
	// ErrNotFound is returned when no snapshot is stored under the given id.
	ErrNotFound = fmt.Errorf("snapshot not found")
)
