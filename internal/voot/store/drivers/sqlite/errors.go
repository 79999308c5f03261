package sqlite

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/grantstore/internal/voot/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapErr wraps driver errors as *store.FaultError, marking key and foreign
// key violations so callers can match them with errors.Is.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			err = fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			err = fmt.Errorf("%w: %w", store.ErrReferentialIntegrity, err)
		}
	}

	return store.Fault(op, err)
}
