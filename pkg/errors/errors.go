// Package errors provides structured error types for microcharts.
//
// Errors carry a machine-readable [Code]. Each code knows its HTTP status
// and whether it reports bad input, so the CLI picks exit codes and the
// HTTP service picks status codes without string matching.
//
// # Error Codes
//
//   - INVALID_*: chart definitions, flags or request bodies that fail validation
//   - FILE_NOT_FOUND: a definition file that does not exist
//   - INTERNAL_ERROR / UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidKind, "unknown chart kind %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidKind) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidDefinition, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidKind        Code = "INVALID_KIND"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidOrientation Code = "INVALID_ORIENTATION"
	ErrCodeInvalidMode        Code = "INVALID_MODE"
	ErrCodeInvalidColor       Code = "INVALID_COLOR"
	ErrCodeInvalidDefinition  Code = "INVALID_DEFINITION"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

type codeInfo struct {
	status  int
	invalid bool
}

var codes = map[Code]codeInfo{
	ErrCodeInvalidInput:       {http.StatusBadRequest, true},
	ErrCodeInvalidKind:        {http.StatusBadRequest, true},
	ErrCodeInvalidFormat:      {http.StatusBadRequest, true},
	ErrCodeInvalidOrientation: {http.StatusBadRequest, true},
	ErrCodeInvalidMode:        {http.StatusBadRequest, true},
	ErrCodeInvalidColor:       {http.StatusBadRequest, true},
	ErrCodeInvalidDefinition:  {http.StatusBadRequest, true},
	ErrCodeFileNotFound:       {http.StatusNotFound, false},
	ErrCodeInternal:           {http.StatusInternalServerError, false},
	ErrCodeUnsupported:        {http.StatusNotImplemented, false},
}

// Invalid reports whether c is one of the INVALID_* codes.
func (c Code) Invalid() bool { return codes[c].invalid }

// HTTPStatus returns the response status for c; unknown codes map to 500.
func (c Code) HTTPStatus() int {
	if info, ok := codes[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets a bare *Error act as a code sentinel:
//
//	errors.Is(err, &Error{Code: ErrCodeInvalidKind})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Cause == nil && t.Code == e.Code
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. Errors from
// outside this package are returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
func IsInvalid(err error) bool { return GetCode(err).Invalid() }

// HTTPStatus maps err to a response status. Errors without a code are 500.
func HTTPStatus(err error) int { return GetCode(err).HTTPStatus() }
