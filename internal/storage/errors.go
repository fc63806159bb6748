package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a key has never been written
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned by Load when the backing file does not exist
	ErrNotInitialized = errors.New("storage not initialized, run 'dashlit init' first")
	// ErrAlreadyInitialized is returned by Init when the backing file exists
	ErrAlreadyInitialized = errors.New("storage already initialized")
	// ErrNotLoaded is returned by entry operations before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// DecodeError reports a stored value that is present but malformed.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PersistError reports a value that could not be written. The caller's
// in-memory state stays authoritative.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persisting %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
