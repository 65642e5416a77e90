// Package errors defines the application error taxonomy.
package errors

import "net/http"

// APIError represents a structured application error with an associated
// HTTP status for surfacing through the HTTP layer.
type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Predefined errors
var (
	ErrBadRequest       = &APIError{HTTPStatus: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "Invalid request parameters"}
	ErrInvalidJSON      = &APIError{HTTPStatus: http.StatusBadRequest, Code: "INVALID_JSON", Message: "Invalid JSON format"}
	ErrValidation       = &APIError{HTTPStatus: http.StatusBadRequest, Code: "VALIDATION_FAILED", Message: "Validation failed"}
	ErrInternalServer   = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
	ErrResourceNotFound = &APIError{HTTPStatus: http.StatusNotFound, Code: "NOT_FOUND", Message: "Resource not found"}

	// ErrConfiguration is fatal at startup: the process must not serve
	// traffic with an unknown engine name or missing required configuration.
	ErrConfiguration = &APIError{HTTPStatus: http.StatusInternalServerError, Code: "CONFIGURATION_ERROR", Message: "Invalid or missing configuration"}

	// ErrTranslation covers vendor HTTP failures and unexpected response
	// shapes. Not retried at this layer.
	ErrTranslation = &APIError{HTTPStatus: http.StatusBadGateway, Code: "TRANSLATION_ERROR", Message: "Translation vendor request failed"}

	// ErrStoreUnavailable indicates the external key-value store cannot be
	// reached. Meeting mode operations fail fast on it.
	ErrStoreUnavailable = &APIError{HTTPStatus: http.StatusServiceUnavailable, Code: "STORE_UNAVAILABLE", Message: "Key-value store is unavailable"}
)

// NewAPIError creates a copy of a predefined error with a custom message.
func NewAPIError(base *APIError, message string) *APIError {
	return &APIError{
		HTTPStatus: base.HTTPStatus,
		Code:       base.Code,
		Message:    message,
	}
}

// NewConfigurationError creates a configuration error with a custom message.
func NewConfigurationError(message string) *APIError {
	return NewAPIError(ErrConfiguration, message)
}

// NewTranslationError creates a translation error with a custom message.
func NewTranslationError(message string) *APIError {
	return NewAPIError(ErrTranslation, message)
}

// NewStoreUnavailableError creates a store availability error with a custom message.
func NewStoreUnavailableError(message string) *APIError {
	return NewAPIError(ErrStoreUnavailable, message)
}

// NewValidationError creates a validation error with a custom message.
func NewValidationError(message string) *APIError {
	return NewAPIError(ErrValidation, message)
}
