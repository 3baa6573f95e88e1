package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

// InsertError reports a create that failed on both write paths. The message
// keeps both underlying causes so neither failure is lost.
type InsertError struct {
	Primary  error
	Fallback error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("both primary and fallback insert failed: %s | %s", e.Primary, e.Fallback)
}

func NewInsertError(primary, fallback error) error {
	return &InsertError{Primary: primary, Fallback: fallback}
}

func IsInsertError(err error) bool {
	var insertError *InsertError
	ok := errors.As(err, &insertError)
	return ok
}
