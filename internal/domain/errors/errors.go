package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
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

// Is matches errors carrying the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation errors
	ErrInvalidUserID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_ID",
		"user_id must be a valid UUID",
		"",
	)

	ErrInvalidPodcastID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PODCAST_ID",
		"podcast id must be a valid UUID",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrEmailIDsRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IDS_REQUIRED",
		"At least one email ID is required",
		"",
	)

	ErrInvalidCredentialBundle = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIAL_BUNDLE",
		"Gmail credentials must include an email address and a refresh token",
		"",
	)

	ErrInvalidOAuthState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OAUTH_STATE",
		"Invalid or expired authorization state",
		"",
	)

	// Not found errors
	ErrPodcastNotFound = NewBaseError(
		http.StatusNotFound,
		"PODCAST_NOT_FOUND",
		"Podcast not found",
		"",
	)

	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"Podcast job not found",
		"",
	)

	ErrGmailNotConnected = NewBaseError(
		http.StatusNotFound,
		"GMAIL_NOT_CONNECTED",
		"Gmail not connected",
		"",
	)

	ErrAudioNotAvailable = NewBaseError(
		http.StatusNotFound,
		"AUDIO_NOT_AVAILABLE",
		"Podcast has no audio URL",
		"",
	)

	// Configuration errors
	ErrStoreNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"STORE_NOT_CONFIGURED",
		"Database connection not configured",
		"",
	)

	// Upstream errors
	ErrScriptGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SCRIPT_GENERATION_FAILED",
		"Failed to generate podcast script",
		"",
	)

	ErrAudioTooSmall = NewBaseError(
		http.StatusInternalServerError,
		"AUDIO_TOO_SMALL",
		"Generated audio file is too small or empty",
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

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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

// UpstreamError reports a failed call to a dependent service. The upstream
// message is part of the client-facing message.
type UpstreamError struct {
	service string
	err     error
}

// NewUpstreamError creates an error for a failed call to service
func NewUpstreamError(service string, err error) AppError {
	return &UpstreamError{
		service: service,
		err:     err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return e.Message()
}

// Unwrap returns the upstream cause
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// Service returns the name of the failing dependency
func (e *UpstreamError) Service() string {
	return e.service
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	if e.err == nil {
		return fmt.Sprintf("%s request failed", e.service)
	}

	return fmt.Sprintf("%s request failed: %s", e.service, e.err.Error())
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return ""
}
