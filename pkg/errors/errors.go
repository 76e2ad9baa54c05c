// Package errors provides structured error types for the linkage tools.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_UNREACHABLE: The linkage cannot span the requested geometry
//   - DEGENERATE_GEOMETRY: The requested geometry has no defined solution
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "segment %s must be positive", name)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read config %s", path)
//
// Types outside this package can participate by implementing [Coded].
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidSegment Code = "INVALID_SEGMENT"
	ErrCodeInvalidTarget  Code = "INVALID_TARGET"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle   Code = "INVALID_STYLE"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Solve errors
	ErrCodeLiftArmUnreachable    Code = "LIFT_ARM_UNREACHABLE"
	ErrCodeSupportArmUnreachable Code = "SUPPORT_ARM_UNREACHABLE"
	ErrCodeDegenerateGeometry    Code = "DEGENERATE_GEOMETRY"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Coded is implemented by error types defined outside this package that
// carry an error code and a message fit for display.
type Coded interface {
	error
	Code() Code
	UserMessage() string
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a [Coded] error with a
// matching code; the outermost coded error wins.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var e *Error
	var c Coded
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &c):
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For [Coded] errors, returns their own user message.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	var c Coded
	switch {
	case errors.As(err, &e):
		return e.Message
	case errors.As(err, &c):
		return c.UserMessage()
	}
	return err.Error()
}
