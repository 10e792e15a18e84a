package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storykit/core/cli"
	"github.com/storykit/core/version"
)

// NewVersionCmd creates the `version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			if cli.GetOptions(cmd).JSONOutput {
				fmt.Println(info.JSON())
				return
			}
			fmt.Println(info.String())
		},
	}
}
