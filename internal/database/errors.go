package database

import (
	"errors"
	"fmt"

	"github.com/nfrund/tinyhouse/internal/domain"
)

// Common database errors that can be checked using errors.Is().
var (
	// ErrNotConnected is returned when no healthy connection is available.
	ErrNotConnected = errors.New("database not connected")

	// ErrInvalidInput is returned when invalid input is provided to a method.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrQueryFailed is returned when a query execution fails.
	ErrQueryFailed = errors.New("query execution failed")
)

// DBError represents a database error with additional context.
type DBError struct {
	// The underlying error that was returned by the database driver.
	err error

	// What the store was doing when the error occurred.
	op string

	// The query that was being executed when the error occurred.
	query string
}

// NewDBError creates a new DBError with the given error and operation description.
func NewDBError(err error, op string) *DBError {
	return &DBError{err: err, op: op}
}

// WithQuery adds query information to the error.
func (e *DBError) WithQuery(query string) *DBError {
	e.query = query
	return e
}

// Error returns the error message.
func (e *DBError) Error() string {
	msg := e.op
	if e.query != "" {
		msg = fmt.Sprintf("%s (query: %s)", msg, e.query)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *DBError) Unwrap() error {
	return e.err
}

// notFound builds a DBError that matches domain.ErrNotFound.
func notFound(op string) *DBError {
	return NewDBError(domain.ErrNotFound, op)
}

// WrapError wraps an error with additional context.
// If the error is already a DBError, the operation descriptions are chained.
func WrapError(err error, op string) error {
	if err == nil {
		return nil
	}
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return &DBError{err: dbErr.err, op: fmt.Sprintf("%s: %s", op, dbErr.op), query: dbErr.query}
	}
	return NewDBError(err, op)
}
