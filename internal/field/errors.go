package field

import (
	"errors"
	"fmt"
)

// FieldError reports a validation failure for one input field. All
// field errors are local, non-retryable, and carry the offending value
// so the caller can fix the input.
type FieldError struct {
	// Code identifies the error category.
	Code string

	// Field names the input field ("dob", "full_name", ...).
	Field string

	// Value is the raw value as received.
	Value string

	// Message is a human-readable description.
	Message string
}

const (
	// ErrCodeInvalidDate indicates a malformed or out-of-range DOB.
	ErrCodeInvalidDate = "INVALID_DATE"
)

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (field=%s, value=%q)", e.Code, e.Message, e.Field, e.Value)
}

// IsInvalidDate reports whether err is an INVALID_DATE field error.
// Uses errors.As to handle wrapped errors.
func IsInvalidDate(err error) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeInvalidDate
	}
	return false
}

func newInvalidDate(value, message string) *FieldError {
	return &FieldError{
		Code:    ErrCodeInvalidDate,
		Field:   "dob",
		Value:   value,
		Message: message,
	}
}
