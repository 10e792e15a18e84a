package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/storykit/core/cli"
	"github.com/storykit/core/config"
	"github.com/storykit/core/embedmode"
	"github.com/storykit/core/errors"
	"github.com/storykit/core/tui/inspector"
)

// NewInspectCmd creates the `inspect` command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Open a live TUI view of a story state store",
		Long: `Builds a story state store from the embed presets and opens an interactive
view of it: every property with its current value, with keybindings that
dispatch the corresponding actions. Press ? inside the view for the full
keybinding list.`,
		RunE: runInspectE,
	}

	cmd.Flags().StringP("mode", "m", "default", "Embed mode (default, name-tbd, no-sharing)")
	cmd.Flags().Bool("watch", false, "Reload the preset file on change (requires --presets)")
	cmd.Flags().StringSlice("pages", nil, "Page IDs for navigation (comma-separated)")

	return cmd
}

func runInspectE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	modeName, _ := cmd.Flags().GetString("mode")
	mode, ok := embedmode.ParseName(modeName)
	if !ok {
		return handler.Handle(errors.UnknownMode(modeName))
	}

	presets, err := config.LoadWithBuiltin(opts.PresetFile)
	if err != nil {
		return handler.Handle(err)
	}

	pages, _ := cmd.Flags().GetStringSlice("pages")
	model := inspector.New(presets, mode, pages)
	p := tea.NewProgram(model, tea.WithAltScreen())

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		if opts.PresetFile == "" {
			return handler.Handle(errors.InvalidInput("--watch requires --presets"))
		}
		watcher, err := config.NewWatcher(opts.PresetFile, 100*time.Millisecond, func(presets config.Presets) {
			p.Send(inspector.PresetsReloadedMsg{Presets: presets})
		})
		if err != nil {
			return handler.Handle(errors.Wrap(err, errors.ErrCodeInternal, "start preset watcher"))
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go watcher.Start(ctx)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}
	return nil
}
