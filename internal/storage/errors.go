package storage

import "errors"

// ErrUnavailable is returned when the underlying storage medium cannot be
// read or written. Operations that fail with it are not retried and the
// in-memory state is not rolled back; callers reload from storage on next
// start.
var ErrUnavailable = errors.New("storage unavailable")

// ErrNotInitialized is returned by Load when no store exists at the
// configured path yet.
var ErrNotInitialized = errors.New("storage not initialized, run 'packlight init' first")
