package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to handlers.
const (
	CodeValidation = "validationError"
	CodeConflict   = "availabilityConflict"
	CodeStore      = "storeError"
	CodeNotFound   = "notFound"
)

// Error is a coded service error; handlers map codes to HTTP statuses.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Code: CodeConflict, Message: msg}
}

func NewStoreError(err error) error {
	return &Error{Code: CodeStore, Message: err.Error()}
}

func NewNotFoundError(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// ErrorCode extracts the code from a service error, or CodeStore for
// anything unrecognized.
func ErrorCode(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeStore
}
