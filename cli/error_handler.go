package cli

import (
	"fmt"
	"os"

	"github.com/storykit/core/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		if storyErr, ok := err.(*errors.StoryError); ok {
			fmt.Fprintf(os.Stderr, "❌ Preset file not found: %s\n", storyErr.Details["path"])
		} else {
			fmt.Fprintf(os.Stderr, "❌ Preset file not found.\n")
		}
		return err

	case errors.ErrCodeSchemaValidation:
		fmt.Fprintf(os.Stderr, "❌ Preset file failed schema validation.\n")
		fmt.Fprintf(os.Stderr, "Run 'storykit validate <file>' for the full report.\n")
		return err

	case errors.ErrCodeUnknownAction:
		if storyErr, ok := err.(*errors.StoryError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unknown action '%s'\n", storyErr.Details["action"])
			fmt.Fprintf(os.Stderr, "Run 'storykit simulate --list-actions' to see known actions.\n")
		}
		return err

	case errors.ErrCodeUnknownMode:
		if storyErr, ok := err.(*errors.StoryError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unknown embed mode '%s' (known: default, name-tbd, no-sharing)\n", storyErr.Details["mode"])
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if storyErr, ok := err.(*errors.StoryError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", storyErr.ToJSON())
			}
		}
		return err
	}
}
