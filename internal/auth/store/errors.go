package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is absence: a normal outcome, never a fault.
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is a unique or primary key violation. Drivers report
	// it wrapped in a *FaultError.
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrReferentialIntegrity means a row points at something that is not
	// there, e.g. an authorization code whose access token is missing.
	ErrReferentialIntegrity = errors.New("store: referential integrity violation")
)

// FaultError is a storage failure: connection loss, constraint violation,
// malformed statement or inconsistent data. It is always surfaced to the
// caller and never retried by the store.
type FaultError struct {
	Op  string
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }

// Fault wraps err as a *FaultError for op. It returns nil for a nil err.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FaultError{Op: op, Err: err}
}

// IsFault reports whether err is, or wraps, a *FaultError.
func IsFault(err error) bool {
	var fe *FaultError
	return errors.As(err, &fe)
}
