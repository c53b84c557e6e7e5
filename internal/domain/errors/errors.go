package errors

import (
	"fmt"
	"net/http"

	"dealdrop/internal/errors"
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
	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrNotListingOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_LISTING_OWNER",
		"You do not own this listing",
		"",
	)

	// Flash-deal policy refusals. These are terminal: callers must surface
	// them, never retry them.
	ErrFlashDealNotFound = NewBaseError(
		http.StatusNotFound,
		"FLASH_DEAL_NOT_FOUND",
		"Flash deal not found",
		"",
	)

	ErrFlashDealExpired = NewBaseError(
		http.StatusGone,
		"FLASH_DEAL_EXPIRED",
		"This flash deal has expired",
		"",
	)

	ErrFlashDealSoldOut = NewBaseError(
		http.StatusConflict,
		"FLASH_DEAL_SOLD_OUT",
		"This flash deal has no redemptions left",
		"",
	)

	ErrFlashDealNotDiscounted = NewBaseError(
		http.StatusBadRequest,
		"FLASH_DEAL_NOT_DISCOUNTED",
		"Flash price must undercut the original price",
		"",
	)

	// Favorite-related errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
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
)

// RateLimitError is returned when a vendor's location update is still inside
// its cooldown window. It carries the remaining wait so clients can render
// "try again in N minutes".
type RateLimitError struct {
	WaitMinutes int
}

// NewRateLimitError creates a rate-limit refusal with the remaining wait.
func NewRateLimitError(waitMinutes int) *RateLimitError {
	return &RateLimitError{WaitMinutes: waitMinutes}
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

// ErrorCode returns the business error code
func (e *RateLimitError) ErrorCode() string {
	return "LOCATION_RATE_LIMITED"
}

// Message returns the user-friendly error message
func (e *RateLimitError) Message() string {
	return fmt.Sprintf("Location was updated recently. Please wait %d minutes.", e.WaitMinutes)
}

// Details returns detailed error information
func (e *RateLimitError) Details() string {
	return fmt.Sprintf("waitMinutes=%d", e.WaitMinutes)
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
