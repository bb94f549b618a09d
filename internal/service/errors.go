package service

import "fmt"

// FieldViolation describes a single failed constraint on an input field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every violated field constraint of a payload.
// Handlers map it to a 422 with the violation list in the body.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field violation(s)", len(e.Violations))
}

// PersistenceError wraps a store failure. Handlers map it to a 500 with
// a generic message; the wrapped detail is only ever logged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
