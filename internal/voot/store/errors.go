package store

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is a primary key violation, e.g. a duplicate group id
	// or the same user added to a group twice.
	ErrAlreadyExists = errors.New("voot store: already exists")

	// ErrReferentialIntegrity means a membership names a group or role that
	// does not exist.
	ErrReferentialIntegrity = errors.New("voot store: referential integrity violation")
)

// FaultError is a storage failure tagged with the operation that hit it.
type FaultError struct {
	Op  string
	Err error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("voot store: %s: %v", e.Op, e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }

// Fault wraps err as a *FaultError for op. It returns nil for a nil err.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FaultError{Op: op, Err: err}
}
