package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceSimpleToggles(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   map[Property]any
	}{
		{name: "toggle ad", action: ToggleAd{On: true}, want: map[Property]any{AdState: true}},
		{name: "toggle story has audio", action: ToggleStoryHasAudio{On: true}, want: map[Property]any{StoryHasAudioState: true}},
		{name: "toggle landscape", action: ToggleLandscape{On: true}, want: map[Property]any{LandscapeState: true}},
		{name: "toggle muted off", action: ToggleMuted{On: false}, want: map[Property]any{MutedState: false}},
		{name: "toggle page has audio", action: TogglePageHasAudio{On: true}, want: map[Property]any{PageHasAudioState: true}},
		{name: "toggle paused", action: TogglePaused{On: true}, want: map[Property]any{PausedState: true}},
		{name: "toggle rtl", action: ToggleRTL{On: true}, want: map[Property]any{RTLState: true}},
		{name: "toggle has sidebar", action: ToggleHasSidebar{On: true}, want: map[Property]any{HasSidebarState: true}},
		{name: "toggle supported browser off", action: ToggleSupportedBrowser{On: false}, want: map[Property]any{SupportedBrowserState: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := DefaultSnapshot()
			after := reduce(before, tt.action, nil)

			for p, v := range tt.want {
				assert.Equal(t, v, after[p], "property %s", p)
			}
			// Everything else untouched.
			for p, v := range before {
				if _, changed := tt.want[p]; !changed {
					assert.Equal(t, v, after[p], "property %s should be untouched", p)
				}
			}
		})
	}
}

func TestReduceNeverMutatesInput(t *testing.T) {
	before := DefaultSnapshot()
	reduce(before, ToggleMuted{On: false}, nil)
	assert.Equal(t, DefaultSnapshot(), before)
}

func TestReduceToggleAccessPairsPaused(t *testing.T) {
	s := DefaultSnapshot()

	s = reduce(s, ToggleAccess{On: true}, nil)
	assert.Equal(t, true, s[AccessState])
	assert.Equal(t, true, s[PausedState])

	s = reduce(s, ToggleAccess{On: false}, nil)
	assert.Equal(t, false, s[AccessState])
	assert.Equal(t, false, s[PausedState])
}

func TestReduceToggleAccessNoOpWhenUnchanged(t *testing.T) {
	before := DefaultSnapshot()
	after := reduce(before, ToggleAccess{On: false}, nil)

	// Same reference: the guard short-circuits before cloning, so even the
	// paired pausedstate write is skipped.
	assert.True(t, sameSnapshot(before, after))
}

func TestReduceToggleSidebarNoOpWhenUnchanged(t *testing.T) {
	s := DefaultSnapshot()

	changed := reduce(s, ToggleSidebar{On: true}, nil)
	assert.False(t, sameSnapshot(s, changed))
	assert.Equal(t, true, changed[SidebarState])
	assert.Equal(t, true, changed[PausedState])

	again := reduce(changed, ToggleSidebar{On: true}, nil)
	assert.True(t, sameSnapshot(changed, again))
}

func TestReduceInfoDialogAndShareMenuAlwaysWrite(t *testing.T) {
	// Unlike access and sidebar, these have no unchanged-value guard: a
	// same-value toggle still produces a fresh snapshot.
	s := DefaultSnapshot()

	after := reduce(s, ToggleInfoDialog{On: false}, nil)
	assert.False(t, sameSnapshot(s, after))

	after = reduce(s, ToggleShareMenu{On: false}, nil)
	assert.False(t, sameSnapshot(s, after))
}

func TestReduceInfoDialogPairsPaused(t *testing.T) {
	s := reduce(DefaultSnapshot(), ToggleInfoDialog{On: true}, nil)
	assert.Equal(t, true, s[InfoDialogState])
	assert.Equal(t, true, s[PausedState])
}

func TestReduceShareMenuPairsPaused(t *testing.T) {
	s := reduce(DefaultSnapshot(), ToggleShareMenu{On: true}, nil)
	assert.Equal(t, true, s[ShareMenuState])
	assert.Equal(t, true, s[PausedState])
}

func TestReduceBookendRespectsCapability(t *testing.T) {
	s := DefaultSnapshot()
	s[CanShowBookend] = false

	after := reduce(s, ToggleBookend{On: true}, nil)
	assert.True(t, sameSnapshot(s, after))

	s[CanShowBookend] = true
	after = reduce(s, ToggleBookend{On: true}, nil)
	assert.Equal(t, true, after[BookendState])
}

func TestReduceToggleUI(t *testing.T) {
	s := reduce(DefaultSnapshot(), ToggleUI{UI: UIDesktop}, nil)
	assert.Equal(t, UIDesktop, s[UIState])
	assert.Equal(t, true, s[DesktopState])

	s = reduce(s, ToggleUI{UI: UIScroll}, nil)
	assert.Equal(t, UIScroll, s[UIState])
	assert.Equal(t, false, s[DesktopState])
}

func TestReduceConsentID(t *testing.T) {
	id := "consent-123"
	s := reduce(DefaultSnapshot(), SetConsentID{ID: &id}, nil)
	assert.Equal(t, "consent-123", s[ConsentID])

	s = reduce(s, SetConsentID{}, nil)
	assert.Nil(t, s[ConsentID])

	// The key itself is never dropped.
	_, ok := s[ConsentID]
	assert.True(t, ok)
}

func TestReduceChangePage(t *testing.T) {
	s := reduce(DefaultSnapshot(), ChangePage{ID: "page-2", Index: 1}, nil)
	assert.Equal(t, "page-2", s[CurrentPageID])
	assert.Equal(t, 1, s[CurrentPageIndex])
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestReduceUnknownActionIsNoOp(t *testing.T) {
	before := DefaultSnapshot()
	after := reduce(before, bogusAction{}, nil)
	assert.True(t, sameSnapshot(before, after))
}

func TestReduceKeepsClosedKeySet(t *testing.T) {
	s := DefaultSnapshot()
	actions := []Action{
		ToggleAccess{On: true},
		ToggleAd{On: true},
		ToggleBookend{On: true},
		ToggleInfoDialog{On: true},
		ToggleUI{UI: UIDesktop},
		ChangePage{ID: "p", Index: 3},
		SetConsentID{},
	}

	for _, a := range actions {
		s = reduce(s, a, nil)
		assert.Len(t, s, len(Properties), "after %s", ActionName(a))
	}
}

// sameSnapshot reports whether two snapshots are the same map reference.
func sameSnapshot(a, b Snapshot) bool {
	if len(a) != len(b) {
		return false
	}
	// Writing through one must be visible through the other.
	const probe = Property("__probe__")
	a[probe] = true
	_, shared := b[probe]
	delete(a, probe)
	return shared
}
