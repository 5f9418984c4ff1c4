package storage

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates an insert hit the (user, application, day)
	// uniqueness constraint: a record for that day already exists.
	ErrDuplicate = errors.New("commitment already exists for this day")

	// ErrStaleState indicates a conditional update matched no row: the
	// stored state no longer equals the expected source state.
	ErrStaleState = errors.New("commitment state changed concurrently")

	// ErrNotLoaded indicates the store was used before Init/Load.
	ErrNotLoaded = errors.New("storage not loaded")
)
