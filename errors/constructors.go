package errors

import (
	"fmt"
)

// UnknownProperty creates an unknown state property error
func UnknownProperty(property string) *StoryError {
	return New(ErrCodeUnknownProperty, fmt.Sprintf("unknown state property: %s", property)).
		WithDetail("property", property)
}

// UnknownAction creates an unknown action error
func UnknownAction(action string) *StoryError {
	return New(ErrCodeUnknownAction, fmt.Sprintf("unknown action: %s", action)).
		WithDetail("action", action)
}

// UnknownMode creates an unknown embed mode error
func UnknownMode(mode string) *StoryError {
	return New(ErrCodeUnknownMode, fmt.Sprintf("unknown embed mode: %s", mode)).
		WithDetail("mode", mode)
}

// ConfigNotFound creates a preset file not found error
func ConfigNotFound(path string) *StoryError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("preset file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid preset configuration error
func ConfigInvalid(reason string) *StoryError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid preset configuration: %s", reason))
}

// SchemaValidation wraps a schema validation failure
func SchemaValidation(path string, err error) *StoryError {
	return Wrap(err, ErrCodeSchemaValidation, fmt.Sprintf("preset file failed schema validation: %s", path)).
		WithDetail("path", path)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *StoryError {
	return New(ErrCodeInvalidInput, reason)
}
