package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Store errors
	ErrCodeUnknownProperty ErrorCode = "UNKNOWN_PROPERTY"
	ErrCodeUnknownAction   ErrorCode = "UNKNOWN_ACTION"
	ErrCodeUnknownMode     ErrorCode = "UNKNOWN_MODE"

	// Preset / configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeSchemaValidation ErrorCode = "SCHEMA_VALIDATION"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// StoryError represents a structured error with context
type StoryError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *StoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StoryError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *StoryError) WithDetail(key string, value interface{}) *StoryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *StoryError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new StoryError
func New(code ErrorCode, message string) *StoryError {
	return &StoryError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a StoryError
func Wrap(err error, code ErrorCode, message string) *StoryError {
	return &StoryError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific StoryError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	storyErr, ok := err.(*StoryError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return storyErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	storyErr, ok := err.(*StoryError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return storyErr.Code
}
