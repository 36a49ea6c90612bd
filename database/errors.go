package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrConstraintViolation is returned when a write breaks a uniqueness or
	// foreign key constraint, e.g. a taken username.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage error")

	// ErrNotFound is returned when a lookup that must yield a row yields none.
	ErrNotFound = errors.New("not found")
)

// StorageError wraps any other failure reported by the storage engine.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// mapSQLiteError classifies a driver error.
func mapSQLiteError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%s: %w: %v", op, ErrConstraintViolation, err)
	}

	return &StorageError{Op: op, Err: err}
}

// isBusy reports whether err means another connection holds the write lock.
func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}
