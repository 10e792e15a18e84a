package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storykit/core/cli"
	"github.com/storykit/core/config"
	"github.com/storykit/core/errors"
	"github.com/storykit/core/schema"
	"github.com/storykit/core/tui/theme"
)

// NewValidateCmd creates the `validate` command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <presets.yml>",
		Short: "Validate a preset file against the embedded schema",
		Long: `Checks a preset file against the embedded JSON schema, then loads it
through the normal loader to surface mode and merge problems the schema
cannot express.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidateE,
	}
}

func runValidateE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)
	path := args[0]

	validator, err := schema.NewValidator()
	if err != nil {
		return handler.Handle(err)
	}

	if err := validator.ValidateFile(path); err != nil {
		return handler.Handle(errors.SchemaValidation(path, err))
	}

	if _, err := config.Load(path); err != nil {
		return handler.Handle(err)
	}

	fmt.Println(theme.DefaultTheme.Success.Render("✓") + " " + path + " is valid")
	return nil
}
