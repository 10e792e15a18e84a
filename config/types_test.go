package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storykit/core/embedmode"
	"github.com/storykit/core/store"
)

func TestInitialSnapshotDefaultMode(t *testing.T) {
	snap := InitialSnapshot(Builtin(), embedmode.ModeDefault)

	// Default mode is an empty overlay: the snapshot equals the defaults.
	assert.Equal(t, store.DefaultSnapshot(), snap)
}

func TestInitialSnapshotNameTBD(t *testing.T) {
	snap := InitialSnapshot(Builtin(), embedmode.ModeNameTBD)

	assert.Equal(t, false, snap[store.CanShowBookend])
	assert.Equal(t, false, snap[store.CanShowPageHelp])
	assert.Equal(t, false, snap[store.CanShowSharingUIs])
	assert.Equal(t, false, snap[store.CanShowSystemButtons])
	assert.Equal(t, true, snap[store.MutedState])

	// Untouched keys keep their defaults.
	assert.Equal(t, true, snap[store.SupportedBrowserState])
	assert.Equal(t, false, snap[store.PausedState])
}

func TestInitialSnapshotNoSharing(t *testing.T) {
	snap := InitialSnapshot(Builtin(), embedmode.ModeNoSharing)

	assert.Equal(t, false, snap[store.CanShowSharingUIs])
	assert.Equal(t, true, snap[store.CanShowBookend])
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	base := store.DefaultSnapshot()
	Apply(base, Preset{Muted: boolPtr(false)})

	assert.Equal(t, true, base[store.MutedState], "Apply must not mutate its input")
}

func TestApplyKeepsAllKeys(t *testing.T) {
	base := store.DefaultSnapshot()
	next := Apply(base, Builtin().ForMode(embedmode.ModeNameTBD))

	assert.Len(t, next, len(base))
	for _, p := range store.Properties {
		_, ok := next[p]
		assert.True(t, ok, "property %s must survive the overlay", p)
	}
}
