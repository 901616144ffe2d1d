// Package errors defines the coded error taxonomy shared by the engine,
// the persistence layer and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	// Input errors
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeQuestNotFound    = "QUEST_NOT_FOUND"

	// Storage errors
	ErrCodePersistenceFailed = "PERSISTENCE_FAILED"

	// Config errors
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeCatalogInvalid = "CATALOG_INVALID"
)

// Error is an error carrying a stable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrValidationFailed returns an error for rejected input.
func ErrValidationFailed(field, reason string) *Error {
	return &Error{
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// ErrQuestNotFound returns an error when a quest reference does not resolve
// to an active quest.
func ErrQuestNotFound(ref string) *Error {
	return &Error{
		Code:    ErrCodeQuestNotFound,
		Message: fmt.Sprintf("quest not found: %s", ref),
	}
}

// ErrPersistence wraps a load or save failure.
func ErrPersistence(operation string, err error) *Error {
	return &Error{
		Code:    ErrCodePersistenceFailed,
		Message: fmt.Sprintf("persistence error during %s", operation),
		Err:     err,
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(reason string) *Error {
	return &Error{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
	}
}

// ErrCatalogInvalid returns an error for an invalid artwork catalog.
func ErrCatalogInvalid(reason string) *Error {
	return &Error{
		Code:    ErrCodeCatalogInvalid,
		Message: fmt.Sprintf("invalid artwork catalog: %s", reason),
	}
}

// HasCode reports whether err, or any error it wraps, is an *Error with code.
func HasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return HasCode(err, ErrCodeValidationFailed)
}

// IsNotFound reports whether err is a quest-not-found failure.
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeQuestNotFound)
}

// IsPersistence reports whether err is a persistence failure.
func IsPersistence(err error) bool {
	return HasCode(err, ErrCodePersistenceFailed)
}
