package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = errors.New("validation error")

	// ErrMalformedInput matches every *MalformedInputError via errors.Is
	ErrMalformedInput = errors.New("malformed input")
)

// ValidationError incomplete or structurally invalid draft/schedule data.
// Field names the offending field, Code is a stable machine-readable reason.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Code)
	}
	return fmt.Sprintf("validation error: %s: %s: %s", e.Field, e.Code, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MalformedInputError a timestamp or time-of-day string that could not be parsed.
type MalformedInputError struct {
	Field string
	Value string
	Err   error
}

func NewMalformedInputError(field, value string, err error) *MalformedInputError {
	return &MalformedInputError{Field: field, Value: value, Err: err}
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s=%q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed input: %s=%q", e.Field, e.Value)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
