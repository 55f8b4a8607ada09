package database

import "errors"

// Store errors. Every failure returned by Store wraps exactly one of these.
var (
	// ErrStoreUnavailable means the database could not be opened. Fatal until restart.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotInitialized means an operation ran before Init.
	ErrNotInitialized = errors.New("store not initialized")

	ErrRead  = errors.New("read failed")
	ErrWrite = errors.New("write failed")
)
