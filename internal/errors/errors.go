// Package errors defines the structured application error used across the
// service. Every layer wraps failures into an *AppError carrying a code, so
// handlers can pick a response shape without string matching.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeSessionRestore indicates a stored session could not be restored.
	ErrCodeSessionRestore ErrorCode = "session_restore"
	// ErrCodeInvalidSession indicates a session pair that fails validation.
	ErrCodeInvalidSession ErrorCode = "invalid_session"
	// ErrCodeLoad indicates a remote collection fetch failed.
	ErrCodeLoad ErrorCode = "load"
	// ErrCodeMutation indicates a remote write was rejected or failed.
	ErrCodeMutation ErrorCode = "mutation"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeUnauthorized indicates missing or rejected credentials.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeForbidden indicates the caller's role does not permit the action.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As through Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message. For remote API rejections
	// this is the server's response body, verbatim.
	Message string
	// Cause is the underlying error (optional)
	Cause error
	// Status is the remote HTTP status that produced the error, when one did
	Status int
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// SessionRestore creates a new SessionRestore error.
func SessionRestore(message string) *AppError {
	return &AppError{Code: ErrCodeSessionRestore, Message: message}
}

// InvalidSession creates a new InvalidSession error.
func InvalidSession(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidSession, Message: message}
}

// Load creates a new Load error.
func Load(message string) *AppError {
	return &AppError{Code: ErrCodeLoad, Message: message}
}

// Loadf creates a new Load error with formatted message.
func Loadf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeLoad, Message: fmt.Sprintf(format, args...)}
}

// Mutation creates a new Mutation error.
func Mutation(message string) *AppError {
	return &AppError{Code: ErrCodeMutation, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return &AppError{Code: ErrCodeUnauthorized, Message: message}
}

// Forbidden creates a new Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Remote creates an error for a non-2xx remote API response, keeping the
// status and the server's message verbatim. Credential and permission
// statuses get their own codes so handlers can redirect or deny cleanly.
func Remote(status int, message string) *AppError {
	code := ErrCodeMutation
	switch status {
	case 401:
		code = ErrCodeUnauthorized
	case 403:
		code = ErrCodeForbidden
	}
	return &AppError{Code: code, Message: message, Status: status}
}

// Wrap wraps an existing error with an AppError.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsSessionRestore checks if an error is a SessionRestore error.
func IsSessionRestore(err error) bool {
	return isCode(err, ErrCodeSessionRestore)
}

// IsInvalidSession checks if an error is an InvalidSession error.
func IsInvalidSession(err error) bool {
	return isCode(err, ErrCodeInvalidSession)
}

// IsLoad checks if an error is a Load error.
func IsLoad(err error) bool {
	return isCode(err, ErrCodeLoad)
}

// IsMutation checks if an error is a Mutation error.
func IsMutation(err error) bool {
	return isCode(err, ErrCodeMutation)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsForbidden checks if an error is a Forbidden error.
func IsForbidden(err error) bool {
	return isCode(err, ErrCodeForbidden)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetStatus returns the remote HTTP status from an error, or zero.
func GetStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}

// UserMessage returns the message safe to render to the operator. AppError
// messages are crafted for display; anything else collapses to a generic
// line so internals never leak into markup.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "something went wrong"
}
