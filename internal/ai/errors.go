package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of a remote service failure
type ErrorType string

const (
	// ErrTypeBadRequest indicates a malformed or rejected request (400)
	ErrTypeBadRequest ErrorType = "bad_request"

	// ErrTypeInvalidCredentials indicates a missing or revoked API key (401)
	ErrTypeInvalidCredentials ErrorType = "invalid_credentials"

	// ErrTypeInsufficientCredits indicates the account ran out of credits (402)
	ErrTypeInsufficientCredits ErrorType = "insufficient_credits"

	// ErrTypeFlaggedInput indicates moderation rejected the input (403)
	ErrTypeFlaggedInput ErrorType = "flagged_input"

	// ErrTypeTimedOut indicates the request or the empty-response retries timed out (408)
	ErrTypeTimedOut ErrorType = "timed_out"

	// ErrTypeRateLimited indicates too many requests (429)
	ErrTypeRateLimited ErrorType = "rate_limited"

	// ErrTypeServiceUnavailable indicates the model is down or returned an invalid response (502)
	ErrTypeServiceUnavailable ErrorType = "service_unavailable"

	// ErrTypeNoProviders indicates no provider can serve the model (503)
	ErrTypeNoProviders ErrorType = "no_providers"

	// ErrTypeUnknown covers every other failure
	ErrTypeUnknown ErrorType = "unknown"

	// ErrTypeCatalogUnreachable indicates the model catalog could not be fetched
	ErrTypeCatalogUnreachable ErrorType = "catalog_unreachable"
)

var errorMessages = map[ErrorType]string{
	ErrTypeBadRequest:          "bad request",
	ErrTypeInvalidCredentials:  "invalid credentials",
	ErrTypeInsufficientCredits: "insufficient credits",
	ErrTypeFlaggedInput:        "flagged input",
	ErrTypeTimedOut:            "timed out",
	ErrTypeRateLimited:         "rate limited",
	ErrTypeServiceUnavailable:  "model down or invalid response",
	ErrTypeNoProviders:         "no available providers",
	ErrTypeUnknown:             "unknown error",
	ErrTypeCatalogUnreachable:  "model catalog unreachable",
}

// Message returns the human-readable description of the error type
func (t ErrorType) Message() string {
	if msg, ok := errorMessages[t]; ok {
		return msg
	}
	return errorMessages[ErrTypeUnknown]
}

// ClassifyStatus maps an HTTP status code to a failure type
func ClassifyStatus(status int) ErrorType {
	switch status {
	case http.StatusBadRequest:
		return ErrTypeBadRequest
	case http.StatusUnauthorized:
		return ErrTypeInvalidCredentials
	case http.StatusPaymentRequired:
		return ErrTypeInsufficientCredits
	case http.StatusForbidden:
		return ErrTypeFlaggedInput
	case http.StatusRequestTimeout:
		return ErrTypeTimedOut
	case http.StatusTooManyRequests:
		return ErrTypeRateLimited
	case http.StatusBadGateway:
		return ErrTypeServiceUnavailable
	case http.StatusServiceUnavailable:
		return ErrTypeNoProviders
	default:
		return ErrTypeUnknown
	}
}

// ProviderError represents a failure reported by, or while talking to, a remote service
type ProviderError struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message provides human-readable error description
	Message string `json:"message"`

	// Provider indicates which provider caused the error
	Provider string `json:"provider,omitempty"`

	// StatusCode for HTTP-related errors
	StatusCode int `json:"status_code,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`

	// Retryable indicates if the operation can be retried
	Retryable bool `json:"retryable"`
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	var parts []string

	if e.Provider != "" {
		parts = append(parts, e.Provider)
	}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status %d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *ProviderError) Is(target error) bool {
	if pe, ok := target.(*ProviderError); ok {
		return e.Type == pe.Type
	}
	return false
}

// IsRetryable returns whether the error is retryable
func (e *ProviderError) IsRetryable() bool {
	return e.Retryable
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Provider string `json:"provider"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for provider '%s', field '%s': %s",
		e.Provider, e.Field, e.Message)
}

// Error constructors for common error types

// NewProviderError creates a new provider error
func NewProviderError(errType ErrorType, message, provider string) *ProviderError {
	if message == "" {
		message = errType.Message()
	}
	return &ProviderError{
		Type:      errType,
		Message:   message,
		Provider:  provider,
		Retryable: isRetryableError(errType),
	}
}

// NewProviderErrorWithCause creates a provider error with an underlying cause
func NewProviderErrorWithCause(errType ErrorType, message, provider string, cause error) *ProviderError {
	pe := NewProviderError(errType, message, provider)
	pe.Cause = cause
	return pe
}

// NewStatusError creates a provider error from an HTTP status code
func NewStatusError(status int, provider string) *ProviderError {
	pe := NewProviderError(ClassifyStatus(status), "", provider)
	pe.StatusCode = status
	return pe
}

// NewValidationError creates a validation error
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(provider, field, message string) *ConfigurationError {
	return &ConfigurationError{
		Provider: provider,
		Field:    field,
		Message:  message,
	}
}

// FromContext converts a context failure into a timed out provider error, or returns
// nil when err is not a context error.
func FromContext(err error, provider string) *ProviderError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProviderErrorWithCause(ErrTypeTimedOut, "", provider, err)
	}
	return nil
}

// isRetryableError determines if an error type is retryable
func isRetryableError(errType ErrorType) bool {
	switch errType {
	case ErrTypeRateLimited, ErrTypeTimedOut, ErrTypeServiceUnavailable:
		return true
	default:
		return false
	}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.IsRetryable()
	}
	return false
}

// TypeOf returns the failure type of err, or ErrTypeUnknown if err is not a ProviderError
func TypeOf(err error) ErrorType {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Type
	}
	return ErrTypeUnknown
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
