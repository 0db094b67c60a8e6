package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeAppError           = "APP_ERROR"
	CodeReadingUnavailable = "READING_UNAVAILABLE"
	CodeValidation         = "VALIDATION_ERROR"
	CodeCache              = "CACHE_ERROR"
)

// ErrReadingUnavailable is the sentinel every ReadingUnavailableError matches via errors.Is.
var ErrReadingUnavailable = stderrors.New("reading unavailable")

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(message, code string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// ReadingUnavailableError covers transport failures, malformed model output and
// schema violations alike. Callers only ever see that the reading could not be produced.
type ReadingUnavailableError struct {
	*AppError
	Provider string
}

func NewReadingUnavailableError(provider string, cause error) *ReadingUnavailableError {
	return &ReadingUnavailableError{
		AppError: &AppError{
			Message:    "reading unavailable",
			Code:       CodeReadingUnavailable,
			StatusCode: http.StatusBadGateway,
			Context: map[string]any{
				"provider": provider,
			},
			Cause: cause,
		},
		Provider: provider,
	}
}

func (e *ReadingUnavailableError) Is(target error) bool {
	return target == ErrReadingUnavailable
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: http.StatusBadRequest,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: http.StatusInternalServerError,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

// StatusCode extracts the HTTP status carried by any error in this package,
// falling back to 500 for foreign errors.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrReadingUnavailable):
		return http.StatusBadGateway
	}

	var validation *ValidationError
	if stderrors.As(err, &validation) {
		return validation.StatusCode
	}
	var cacheErr *CacheError
	if stderrors.As(err, &cacheErr) {
		return cacheErr.StatusCode
	}
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
