package main

import (
	"os"

	"github.com/storykit/core/cli"
	"github.com/storykit/core/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"storykit",
		"State store tooling for web story presentations",
	)
	cli.SetStyledHelp(rootCmd)

	rootCmd.AddCommand(cmd.NewInspectCmd())
	rootCmd.AddCommand(cmd.NewSimulateCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
