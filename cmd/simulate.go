package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/storykit/core/cli"
	"github.com/storykit/core/config"
	"github.com/storykit/core/embedmode"
	"github.com/storykit/core/errors"
	"github.com/storykit/core/store"
	"github.com/storykit/core/tui/theme"
)

// simulationScript is the YAML shape read by `simulate`. An empty watch
// list subscribes to every property.
type simulationScript struct {
	Mode  string           `yaml:"mode"`
	Watch []string         `yaml:"watch"`
	Steps []simulationStep `yaml:"steps"`
}

type simulationStep struct {
	Action  string `yaml:"action"`
	Payload any    `yaml:"payload"`
}

// stepResult reports one dispatch for --json output.
type stepResult struct {
	Action  string         `json:"action"`
	Changed map[string]any `json:"changed"`
}

// knownActions is the list shown by --list-actions.
var knownActions = []string{
	"toggle_access", "toggle_ad", "toggle_bookend", "toggle_info_dialog",
	"toggle_story_has_audio", "toggle_landscape", "toggle_muted",
	"toggle_page_has_audio", "toggle_paused", "toggle_rtl", "toggle_sidebar",
	"toggle_has_sidebar", "toggle_supported_browser", "toggle_share_menu",
	"toggle_ui", "set_consent_id", "change_page",
}

// NewSimulateCmd creates the `simulate` command.
func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <script.yml>",
		Short: "Run an action script against a fresh store and print each change",
		Long: `Reads a YAML script of actions, dispatches them in order against a store
built from the embed presets, and prints the properties each dispatch
changed. A no-op dispatch prints nothing for that step.

Example script:

  mode: default
  watch: [mutedstate, pausedstate]
  steps:
    - action: toggle_muted
      payload: false
    - action: change_page
      payload: {id: page-2, index: 1}

The optional watch list restricts output to those properties; omit it to
watch everything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSimulateE,
	}

	cmd.Flags().Bool("list-actions", false, "List known action names and exit")

	return cmd
}

func runSimulateE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)
	t := theme.DefaultTheme

	if list, _ := cmd.Flags().GetBool("list-actions"); list {
		for _, name := range knownActions {
			fmt.Println(name)
		}
		return nil
	}

	if len(args) == 0 {
		return handler.Handle(errors.InvalidInput("a script file is required"))
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return handler.Handle(errors.Wrap(err, errors.ErrCodeInvalidInput, "read script file"))
	}

	var script simulationScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return handler.Handle(errors.Wrap(err, errors.ErrCodeInvalidInput, "parse script file"))
	}

	mode, ok := embedmode.ParseName(script.Mode)
	if !ok {
		return handler.Handle(errors.UnknownMode(script.Mode))
	}

	presets, err := config.LoadWithBuiltin(opts.PresetFile)
	if err != nil {
		return handler.Handle(err)
	}

	st := store.New(config.InitialSnapshot(presets, mode))

	watched := store.Properties
	if len(script.Watch) > 0 {
		watched = watched[:0:0]
		for _, name := range script.Watch {
			p, err := store.ParseProperty(name)
			if err != nil {
				return handler.Handle(err)
			}
			watched = append(watched, p)
		}
	}

	// Track changed values per dispatch through ordinary subscriptions.
	changed := make(map[string]any)
	for _, p := range watched {
		p := p
		st.Subscribe(p, func(v any) {
			changed[string(p)] = v
		}, false)
	}

	for i, step := range script.Steps {
		action, err := store.ParseAction(step.Action, step.Payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "step %d:\n", i+1)
			return handler.Handle(err)
		}

		for k := range changed {
			delete(changed, k)
		}
		st.Dispatch(action)

		if opts.JSONOutput {
			result := stepResult{Action: step.Action, Changed: changed}
			line, _ := json.Marshal(result)
			fmt.Println(string(line))
			continue
		}

		if len(changed) == 0 {
			fmt.Printf("%s %s %s\n", t.Muted.Render(fmt.Sprintf("#%d", i+1)), step.Action, t.Muted.Render("(no change)"))
			continue
		}

		fmt.Printf("%s %s\n", t.Muted.Render(fmt.Sprintf("#%d", i+1)), t.Bold.Render(step.Action))
		names := make([]string, 0, len(changed))
		for name := range changed {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    %s = %v\n", t.Accent.Render(name), changed[name])
		}
	}

	return nil
}
