// Package config defines embed-mode presets: the partial state overrides
// overlaid on the default snapshot when a story's state store is built.
// Built-in presets cover the known embed modes; a preset file can override
// them per field.
package config

//go:generate go run ../tools/schema-generator/

import (
	"github.com/storykit/core/embedmode"
	"github.com/storykit/core/store"
)

// Preset is a partial state override for one embed mode. Nil fields leave
// the base value untouched; the overlay is a shallow per-field override.
// The json tags must mirror the yaml tags: the schema is generated from the
// yaml names and in-memory validation round-trips through encoding/json.
type Preset struct {
	CanShowBookend       *bool `yaml:"can_show_bookend,omitempty" toml:"can_show_bookend,omitempty" json:"can_show_bookend,omitempty" jsonschema:"description=Whether the bookend may be shown at the end of the story"`
	CanShowPageHelp      *bool `yaml:"can_show_page_help,omitempty" toml:"can_show_page_help,omitempty" json:"can_show_page_help,omitempty" jsonschema:"description=Whether the previous-page help hint may be shown"`
	CanShowSharingUIs    *bool `yaml:"can_show_sharing_uis,omitempty" toml:"can_show_sharing_uis,omitempty" json:"can_show_sharing_uis,omitempty" jsonschema:"description=Whether sharing UIs may be shown"`
	CanShowSystemButtons *bool `yaml:"can_show_system_buttons,omitempty" toml:"can_show_system_buttons,omitempty" json:"can_show_system_buttons,omitempty" jsonschema:"description=Whether the system layer buttons may be shown"`
	Muted                *bool `yaml:"muted,omitempty" toml:"muted,omitempty" json:"muted,omitempty" jsonschema:"description=Initial muted state of story playback"`
}

// Presets maps embed-mode names to their partial overrides.
type Presets struct {
	Version string            `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Preset file format version"`
	Modes   map[string]Preset `yaml:"modes,omitempty" toml:"modes,omitempty" json:"modes,omitempty" jsonschema:"description=Map of embed-mode name to its partial state override"`
}

// Builtin returns the presets shipped with the library. The default mode has
// no overrides; the partner embed disables optional chrome and forces muted
// playback; no-sharing only hides sharing UIs.
func Builtin() Presets {
	return Presets{
		Version: "1",
		Modes: map[string]Preset{
			embedmode.ModeNameTBD.String(): {
				CanShowBookend:       boolPtr(false),
				CanShowPageHelp:      boolPtr(false),
				CanShowSharingUIs:    boolPtr(false),
				CanShowSystemButtons: boolPtr(false),
				Muted:                boolPtr(true),
			},
			embedmode.ModeNoSharing.String(): {
				CanShowSharingUIs: boolPtr(false),
			},
		},
	}
}

// ForMode returns the preset for an embed mode. Modes without an entry get
// the zero preset, which overrides nothing.
func (p Presets) ForMode(mode embedmode.Mode) Preset {
	return p.Modes[mode.String()]
}

// InitialSnapshot builds the snapshot a store starts from: the hard-coded
// defaults with the mode's preset overlaid. This happens exactly once at
// store construction.
func InitialSnapshot(p Presets, mode embedmode.Mode) store.Snapshot {
	return Apply(store.DefaultSnapshot(), p.ForMode(mode))
}

// Apply overlays a preset on a snapshot, returning a new snapshot. Nil
// preset fields keep the base value.
func Apply(base store.Snapshot, p Preset) store.Snapshot {
	next := make(store.Snapshot, len(base))
	for k, v := range base {
		next[k] = v
	}

	if p.CanShowBookend != nil {
		next[store.CanShowBookend] = *p.CanShowBookend
	}
	if p.CanShowPageHelp != nil {
		next[store.CanShowPageHelp] = *p.CanShowPageHelp
	}
	if p.CanShowSharingUIs != nil {
		next[store.CanShowSharingUIs] = *p.CanShowSharingUIs
	}
	if p.CanShowSystemButtons != nil {
		next[store.CanShowSystemButtons] = *p.CanShowSystemButtons
	}
	if p.Muted != nil {
		next[store.MutedState] = *p.Muted
	}

	return next
}

func boolPtr(b bool) *bool {
	return &b
}
