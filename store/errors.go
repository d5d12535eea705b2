package store

import (
	"errors"
	"fmt"
)

// Standard errors returned by document stores.
var (
	// ErrNotFound indicates the document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrIsDirectory indicates the path is a directory, not a document.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the document exceeds the maximum size limit.
	ErrTooLarge = errors.New("document too large")

	// ErrBinaryFile indicates the file appears to be binary.
	ErrBinaryFile = errors.New("binary file")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher is closed")

	// ErrAlreadyWatching indicates the path is already being watched.
	ErrAlreadyWatching = errors.New("path is already being watched")

	// ErrNotWatching indicates the path is not being watched.
	ErrNotWatching = errors.New("path is not being watched")

	// ErrPathNotExist indicates the path does not exist.
	ErrPathNotExist = errors.New("path does not exist")
)

// PathError represents an error associated with a document path.
type PathError struct {
	Op   string // Operation that failed (read, overwrite, watch)
	Path string // Document path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new PathError.
func NewPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}

// IsNotFound returns true if the error indicates a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
