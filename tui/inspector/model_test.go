package inspector

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storykit/core/config"
	"github.com/storykit/core/embedmode"
	"github.com/storykit/core/store"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func apply(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestKeyTogglesMuted(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeDefault, nil)
	require.Equal(t, true, m.Store().Get(store.MutedState))

	m = apply(m, keyMsg('m'))
	assert.Equal(t, false, m.Store().Get(store.MutedState))

	m = apply(m, keyMsg('m'))
	assert.Equal(t, true, m.Store().Get(store.MutedState))
}

func TestPageNavigationStopsAtBounds(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeDefault, []string{"cover", "page-1"})

	m = apply(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Store().Get(store.CurrentPageIndex))

	m = apply(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Store().Get(store.CurrentPageIndex))
	assert.Equal(t, "page-1", m.Store().Get(store.CurrentPageID))

	m = apply(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Store().Get(store.CurrentPageIndex))
}

func TestCycleUI(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeDefault, nil)

	m = apply(m, keyMsg('u'))
	assert.Equal(t, store.UIDesktop, m.Store().Get(store.UIState))
	assert.Equal(t, true, m.Store().Get(store.DesktopState))

	m = apply(m, keyMsg('u'))
	assert.Equal(t, store.UIScroll, m.Store().Get(store.UIState))

	m = apply(m, keyMsg('u'))
	assert.Equal(t, store.UIMobile, m.Store().Get(store.UIState))
}

func TestPresetsReloadRebuildsStore(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeNoSharing, nil)
	before := m.Store()

	m = apply(m, keyMsg('m'))
	require.Equal(t, false, m.Store().Get(store.MutedState))

	muted := true
	reloaded := config.Merge(config.Builtin(), config.Presets{
		Modes: map[string]config.Preset{
			"no-sharing": {Muted: &muted},
		},
	})
	m = apply(m, PresetsReloadedMsg{Presets: reloaded})

	assert.NotSame(t, before, m.Store())
	assert.Equal(t, true, m.Store().Get(store.MutedState))
	assert.Equal(t, false, m.Store().Get(store.CanShowSharingUIs))
}

func TestViewListsAllProperties(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeDefault, nil)
	m = apply(m, tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	for _, p := range store.Properties {
		assert.Contains(t, view, string(p))
	}
}

func TestUnboundKeyKeepsChangeHighlight(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeDefault, []string{"cover"})

	m = apply(m, keyMsg('m'))
	seq := m.track.seq
	require.Equal(t, seq, m.track.changed[store.MutedState])

	// A key with no binding must not advance the sequence and clear the
	// highlight from the previous dispatch.
	m = apply(m, keyMsg('x'))
	assert.Equal(t, seq, m.track.seq)
	assert.Equal(t, seq, m.track.changed[store.MutedState])

	// Page navigation at the end of the deck dispatches nothing either.
	m = apply(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, seq, m.track.seq)
}

func TestBookendKeyRespectsCapability(t *testing.T) {
	m := New(config.Builtin(), embedmode.ModeNameTBD, nil)
	require.Equal(t, false, m.Store().Get(store.CanShowBookend))

	m = apply(m, keyMsg('b'))
	assert.Equal(t, false, m.Store().Get(store.BookendState))
}
