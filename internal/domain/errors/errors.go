// Package errors defines the application error taxonomy exposed through the
// HTTP layer.
package errors

import (
	"net/http"

	"shiplog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Logbook-related errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Log entry not found",
		"",
	)

	ErrVoyageNotFound = NewBaseError(
		http.StatusNotFound,
		"VOYAGE_NOT_FOUND",
		"Voyage not found",
		"",
	)

	ErrLogbookUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOGBOOK_UNAVAILABLE",
		"Ship's log is temporarily unavailable",
		"",
	)

	// Tracking-related errors
	ErrVoyageChoiceRequired = NewBaseError(
		http.StatusConflict,
		"VOYAGE_CHOICE_REQUIRED",
		"Choose whether to continue the last voyage or start a new one",
		"",
	)

	ErrStopConfirmationRequired = NewBaseError(
		http.StatusConflict,
		"STOP_CONFIRMATION_REQUIRED",
		"Stopping the voyage requires explicit confirmation",
		"",
	)

	ErrNotTracking = NewBaseError(
		http.StatusConflict,
		"NOT_TRACKING",
		"No voyage is being tracked",
		"",
	)

	ErrAlreadyTracking = NewBaseError(
		http.StatusConflict,
		"ALREADY_TRACKING",
		"A voyage is already being tracked",
		"",
	)

	ErrRecorderFailed = NewBaseError(
		http.StatusBadGateway,
		"RECORDER_FAILED",
		"The GPS recorder rejected the command",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrEntryIDRequired = NewBaseError(
		http.StatusBadRequest,
		"ENTRY_ID_REQUIRED",
		"Every uploaded entry must carry an id",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
