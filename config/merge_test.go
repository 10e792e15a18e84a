package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePerModePerField(t *testing.T) {
	base := Builtin()
	override := Presets{
		Modes: map[string]Preset{
			"name-tbd": {CanShowBookend: boolPtr(true)},
			"kiosk":    {Muted: boolPtr(true)},
		},
	}

	merged := Merge(base, override)

	// Overridden field replaced, sibling fields from base intact.
	tbd := merged.Modes["name-tbd"]
	require.NotNil(t, tbd.CanShowBookend)
	assert.True(t, *tbd.CanShowBookend)
	require.NotNil(t, tbd.CanShowSharingUIs)
	assert.False(t, *tbd.CanShowSharingUIs)

	// New mode from the override appears.
	kiosk, ok := merged.Modes["kiosk"]
	require.True(t, ok)
	require.NotNil(t, kiosk.Muted)

	// Base untouched modes survive.
	_, ok = merged.Modes["no-sharing"]
	assert.True(t, ok)
}

func TestMergeEmptyOverride(t *testing.T) {
	base := Builtin()
	merged := Merge(base, Presets{})
	assert.Equal(t, base, merged)
}

func TestLoadWithBuiltinYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yml")
	content := `
version: "2"
modes:
  no-sharing:
    muted: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	presets, err := LoadWithBuiltin(path)
	require.NoError(t, err)

	assert.Equal(t, "2", presets.Version)
	ns := presets.Modes["no-sharing"]
	require.NotNil(t, ns.Muted)
	assert.True(t, *ns.Muted)
	// Built-in field for the same mode survives the overlay.
	require.NotNil(t, ns.CanShowSharingUIs)
	assert.False(t, *ns.CanShowSharingUIs)
}

func TestLoadWithBuiltinTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	content := `
version = "2"

[modes.name-tbd]
can_show_bookend = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	presets, err := LoadWithBuiltin(path)
	require.NoError(t, err)

	tbd := presets.Modes["name-tbd"]
	require.NotNil(t, tbd.CanShowBookend)
	assert.True(t, *tbd.CanShowBookend)
}
