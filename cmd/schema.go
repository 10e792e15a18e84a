package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storykit/core/cli"
	"github.com/storykit/core/config"
)

// NewSchemaCmd creates the `schema` command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the preset JSON schema",
		Long:  `Generates the JSON schema for preset files and prints it to stdout.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			handler := cli.NewErrorHandler(opts.Verbose)

			data, err := config.GenerateSchema()
			if err != nil {
				return handler.Handle(err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
