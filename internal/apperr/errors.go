// Package apperr defines the error taxonomy the HTTP layer maps to status
// codes: validation (422), not found (404), persistence (500).
package apperr

import "fmt"

// ValidationError carries field-level messages keyed by request field path,
// e.g. "materials.0.quantity".
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func Validation(fields map[string][]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// PersistenceError wraps a datastore failure with the operation that hit it.
// Any open transaction has already been rolled back by the time one of these
// surfaces.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
