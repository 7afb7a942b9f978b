// Package errors provides structured error types for seedglyph.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so that the CLI and the HTTP service can decide how to recover:
//
//   - MALFORMED_TOKEN: the seed token is not "0x" + base58-compatible hex.
//     Callers recover by manufacturing a fresh token.
//   - DEGENERATE_PATH: a path has fewer than two anchors or zero length.
//     Callers recover by rendering the frame without aligned text.
//   - INVALID_*: user input rejected at the settings/flag boundary.
//   - RENDER_FAILED / INTERNAL_ERROR: output or unexpected failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedToken, "missing 0x prefix: %q", s)
//	if errors.Is(err, errors.ErrCodeMalformedToken) {
//	    // fall back to a fresh token
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "encode png")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Core generation errors
	ErrCodeMalformedToken Code = "MALFORMED_TOKEN"
	ErrCodeDegeneratePath Code = "DEGENERATE_PATH"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidSettings Code = "INVALID_SETTINGS"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidSketch   Code = "INVALID_SKETCH"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

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
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
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

// Recoverable reports whether err is one of the core failures the caller is
// expected to recover from rather than abort on.
func Recoverable(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedToken, ErrCodeDegeneratePath:
		return true
	}
	return false
}
