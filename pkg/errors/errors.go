// Package errors provides structured error types for obo2owl.
//
// Every failure that crosses a package boundary (parsing, translation,
// serialization, caching) carries a machine-readable [Code] so the CLI and
// the HTTP server can map it to an exit status or response code.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: the document or a user-supplied value is malformed
//   - *_NOT_FOUND: a referenced resource does not exist
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCardinality, "missing ontology clause")
//	if errors.Is(err, errors.ErrCodeInvalidCardinality) {
//	    // reject the document
//	}
//
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidPath        Code = "INVALID_PATH"
	ErrCodeInvalidIRI         Code = "INVALID_IRI"
	ErrCodeInvalidCardinality Code = "INVALID_CARDINALITY"
	ErrCodeInvalidSyntax      Code = "INVALID_SYNTAX"
	ErrCodeInvalidQualifier   Code = "INVALID_QUALIFIER"
	ErrCodeParse              Code = "PARSE_ERROR"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// Joined errors match if any of their members match.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == code {
		return true
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range j.Unwrap() {
			if Is(inner, code) {
				return true
			}
		}
	}
	return false
}

// Join combines errs into one error; nil entries are dropped. Is matches
// the result if any member matches.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
