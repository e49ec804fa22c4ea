// Package errors defines the application-level error taxonomy exposed to the
// delivery layer.
package errors

import (
	"net/http"

	"guardian/internal/errors"
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
	// Geofence-related errors
	ErrActiveGeofenceExists = NewBaseError(
		http.StatusConflict,
		"ACTIVE_GEOFENCE_EXISTS",
		"An active geofence already exists; wait for it to expire or delete it first",
		"",
	)

	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"Geofence not found",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Geofence radius must be between 50 and 5000 meters",
		"",
	)

	ErrInvalidDuration = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DURATION",
		"Geofence duration must be one of 6, 12 or 24 hours",
		"",
	)

	// Contact-related errors
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Contact not found",
		"",
	)

	ErrContactUnreachable = NewBaseError(
		http.StatusBadRequest,
		"CONTACT_UNREACHABLE",
		"Contact must have at least one of email or mobile",
		"",
	)

	// Alert-related errors
	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"Alert not found",
		"",
	)

	ErrInvalidAlertType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ALERT_TYPE",
		"Unknown alert type filter",
		"",
	)

	// Classifier-related errors
	ErrSampleNotFound = NewBaseError(
		http.StatusNotFound,
		"SAMPLE_NOT_FOUND",
		"Classifier sample not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
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
