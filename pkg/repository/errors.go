package repository

import (
	"database/sql"
	"errors"

	"modernc.org/sqlite"
)

// SQLITE_CONSTRAINT; extended codes (unique, primary key) share the low byte.
const sqliteConstraintCode = 19

// MapError translates database errors to domain errors.
// It maps sql.ErrNoRows to notFoundErr and SQLite constraint violations
// to duplicateErr. Other errors are returned unchanged.
func MapError(err error, notFoundErr, duplicateErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqliteConstraintCode {
		return duplicateErr
	}

	return err
}
