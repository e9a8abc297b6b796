package casm

import "errors"

var (
	// ErrEmptyQuery is returned when a query holds no records.
	ErrEmptyQuery = errors.New("casm: empty query")

	// ErrMissingKey is returned when a record lacks a key of the first record,
	// or a requested property does not exist.
	ErrMissingKey = errors.New("casm: missing key")

	// ErrNotNumeric signals a property value that is not a number (or an
	// array of numbers) where one is required.
	ErrNotNumeric = errors.New("casm: value is not numeric")

	// ErrNotString signals a property value that is not a string.
	ErrNotString = errors.New("casm: value is not a string")

	// ErrIndexOutOfRange signals a configuration index outside the query.
	ErrIndexOutOfRange = errors.New("casm: index out of range")

	// ErrLengthMismatch signals vectors whose lengths must agree but do not.
	ErrLengthMismatch = errors.New("casm: length mismatch")
)
