package engine

import (
	"errors"

	"github.com/emtp-protocol/emtp/internal/field"
	"github.com/emtp-protocol/emtp/internal/keyring"
)

// EmptyInputError reports a record with nothing the engine can derive
// tokens from. It is a validation failure, not a non-match: callers
// must distinguish "no usable input" from "zero overlapping tokens".
type EmptyInputError struct {
	Reason string
}

// Error implements the error interface.
func (e *EmptyInputError) Error() string {
	return "EMPTY_INPUT: " + e.Reason
}

// IsEmptyInput reports whether err is an EMPTY_INPUT error.
// Uses errors.As to handle wrapped errors.
func IsEmptyInput(err error) bool {
	var ee *EmptyInputError
	return errors.As(err, &ee)
}

// IsInvalidDate reports whether err is an INVALID_DATE error.
func IsInvalidDate(err error) bool { return field.IsInvalidDate(err) }

// IsInvalidKeyLength reports whether err is an INVALID_KEY_LENGTH error.
func IsInvalidKeyLength(err error) bool { return keyring.IsInvalidKeyLength(err) }

// IsNoActiveKeys reports whether err is a NO_ACTIVE_KEYS error.
func IsNoActiveKeys(err error) bool { return keyring.IsNoActiveKeys(err) }
