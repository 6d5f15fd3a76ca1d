package history

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no run has the requested ID.
var ErrNotFound = errors.New("run not found")

// StorageError represents an error from a history backend.
type StorageError struct {
	Backend   string // Backend type ("memory", "sqlite")
	Operation string // Operation that failed ("record", "list", ...)
	Cause     error  // Underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("history error [backend=%s, operation=%s]: %v", e.Backend, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(backend, operation string, cause error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Cause:     cause,
	}
}
