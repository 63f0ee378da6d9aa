package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup or delete targets a row that does
// not exist.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is returned when a login attempt fails, without
// distinguishing an unknown user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports caller-supplied data that fails a precondition.
// It is always raised before any storage mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the underlying database. The transaction
// boundaries in this package guarantee no partial mutation was committed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
