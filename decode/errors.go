package decode

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrShapeMismatch indicates an object could not be decoded into a record
	ErrShapeMismatch = errors.New("record shape mismatch")
	// ErrInvalidSchema indicates a record type declares its fields incorrectly
	ErrInvalidSchema = errors.New("invalid record schema")
)

// ShapeMismatchError describes why an object did not fit a record shape
type ShapeMismatchError struct {
	Record string
	Field  string // empty when the mismatch is not tied to one field
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ShapeMismatchError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %q: %s", e.Record, e.Field, e.Reason)
	}
	return fmt.Sprintf("decode %s: %s", e.Record, e.Reason)
}

// Is reports whether target is ErrShapeMismatch
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func (e *ShapeMismatchError) Unwrap() error {
	return e.Err
}
