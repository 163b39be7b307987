// Package csv provides error types for CSV reading.
package csv

import (
	"errors"
	"fmt"
)

// ParseError reports a failure of the underlying source while a row was
// being read. The Reader is unusable afterwards and must be closed.
type ParseError struct {
	// StartLine is the line where the row being read started (1-indexed).
	StartLine int
	// Line is the line the reader had reached when the error occurred (1-indexed).
	Line int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.StartLine == e.Line {
		return fmt.Sprintf("read error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("read error on line %d (started line %d): %v", e.Line, e.StartLine, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldCountError reports a row whose field count differs from the first
// row's when Dialect.StrictFieldCount is set.
type FieldCountError struct {
	// Line is the line the offending row started on (1-indexed).
	Line int
	// Expected is the field count of the first row.
	Expected int
	// Actual is the field count of the offending row.
	Actual int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("record on line %d: wrong number of fields (got %d, expected %d)",
		e.Line, e.Actual, e.Expected)
}

// Unwrap returns ErrFieldCount so callers can match with errors.Is.
func (e *FieldCountError) Unwrap() error {
	return ErrFieldCount
}

// Common errors
var (
	// ErrFieldCount indicates a record has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrHeaderUnavailable indicates name-based access on a row without a header.
	ErrHeaderUnavailable = errors.New("header unavailable")

	// ErrClosed indicates a read from a closed Reader.
	ErrClosed = errors.New("csv: reader closed")
)
