// Package errors defines the application-facing error taxonomy of the portal.
// Request handlers translate these into client responses; nothing here is
// fatal to the process.
package errors

import (
	"fmt"
	"net/http"

	"portal/internal/errors"
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
	ErrGatewayNotFound = NewBaseError(
		http.StatusNotFound,
		"GATEWAY_NOT_FOUND",
		"gateway not found",
		"",
	)

	ErrResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username is already registered",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// InvalidParameterError reports a field whose runtime value is not compatible
// with its declared column type. It is recoverable by the caller and is
// typically surfaced as a client input error.
type InvalidParameterError struct {
	Column     string
	Value      any
	ColumnType string
}

// NewInvalidParameter creates a validation error for a single column.
func NewInvalidParameter(column string, value any, columnType string) *InvalidParameterError {
	return &InvalidParameterError{
		Column:     column,
		Value:      value,
		ColumnType: columnType,
	}
}

// Error implements the error interface
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("column %s value %v type is unexpected: %s", e.Column, e.Value, e.ColumnType)
}

// HTTPCode returns the HTTP status code
func (e *InvalidParameterError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *InvalidParameterError) ErrorCode() string {
	return "INVALID_PARAMETER"
}

// Message returns the user-friendly error message
func (e *InvalidParameterError) Message() string {
	return fmt.Sprintf("invalid value for %s", e.Column)
}

// Details returns detailed error information
func (e *InvalidParameterError) Details() string {
	return e.Error()
}

// SerializationError reports a value the JSON field codec could not encode.
// Treated as a data-integrity failure; not expected given validated writes.
type SerializationError struct {
	err error
}

// NewSerializationError wraps an encoding failure.
func NewSerializationError(err error) *SerializationError {
	return &SerializationError{err: err}
}

// Error implements the error interface
func (e *SerializationError) Error() string {
	return errors.Wrap(e.err, "value is not serializable").Error()
}

// Unwrap exposes the underlying encoder error.
func (e *SerializationError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *SerializationError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *SerializationError) ErrorCode() string {
	return "SERIALIZATION_FAILED"
}

// Message returns the user-friendly error message
func (e *SerializationError) Message() string {
	return "failed to serialize stored value"
}

// Details returns detailed error information
func (e *SerializationError) Details() string {
	return e.err.Error()
}

// DeserializationError reports malformed persisted text the JSON field codec
// could not parse back.
type DeserializationError struct {
	err error
}

// NewDeserializationError wraps a decoding failure.
func NewDeserializationError(err error) *DeserializationError {
	return &DeserializationError{err: err}
}

// Error implements the error interface
func (e *DeserializationError) Error() string {
	return errors.Wrap(e.err, "stored value is malformed").Error()
}

// Unwrap exposes the underlying decoder error.
func (e *DeserializationError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DeserializationError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DeserializationError) ErrorCode() string {
	return "DESERIALIZATION_FAILED"
}

// Message returns the user-friendly error message
func (e *DeserializationError) Message() string {
	return "failed to deserialize stored value"
}

// Details returns detailed error information
func (e *DeserializationError) Details() string {
	return e.err.Error()
}

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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
