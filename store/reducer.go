package store

import (
	"github.com/sirupsen/logrus"
)

// reduce computes the next snapshot from the current one and an action. It
// is pure: the input snapshot is never mutated, and a no-op returns the
// same reference so Dispatch can skip notification entirely.
//
// Access and sidebar toggles short-circuit when the value is unchanged;
// the info-dialog and share-menu toggles do not, even though all four pair
// their flag with pausedstate. The asymmetry is kept for behavioral
// compatibility with the original reducer.
func reduce(state Snapshot, a Action, log *logrus.Entry) Snapshot {
	switch a := a.(type) {
	case ToggleAccess:
		if state[AccessState] == a.On {
			return state
		}
		return state.with(Snapshot{
			AccessState: a.On,
			PausedState: a.On,
		})

	case ToggleAd:
		return state.with(Snapshot{AdState: a.On})

	case ToggleBookend:
		if can, _ := state[CanShowBookend].(bool); !can {
			return state
		}
		return state.with(Snapshot{BookendState: a.On})

	case ToggleInfoDialog:
		return state.with(Snapshot{
			InfoDialogState: a.On,
			PausedState:     a.On,
		})

	case ToggleStoryHasAudio:
		return state.with(Snapshot{StoryHasAudioState: a.On})

	case ToggleLandscape:
		return state.with(Snapshot{LandscapeState: a.On})

	case ToggleMuted:
		return state.with(Snapshot{MutedState: a.On})

	case TogglePageHasAudio:
		return state.with(Snapshot{PageHasAudioState: a.On})

	case TogglePaused:
		return state.with(Snapshot{PausedState: a.On})

	case ToggleRTL:
		return state.with(Snapshot{RTLState: a.On})

	case ToggleSidebar:
		if state[SidebarState] == a.On {
			return state
		}
		return state.with(Snapshot{
			PausedState:  a.On,
			SidebarState: a.On,
		})

	case ToggleHasSidebar:
		return state.with(Snapshot{HasSidebarState: a.On})

	case ToggleSupportedBrowser:
		return state.with(Snapshot{SupportedBrowserState: a.On})

	case ToggleShareMenu:
		return state.with(Snapshot{
			PausedState:    a.On,
			ShareMenuState: a.On,
		})

	case ToggleUI:
		// desktopstate is kept for backward compatibility with subscribers
		// that predate uistate.
		return state.with(Snapshot{
			DesktopState: a.UI == UIDesktop,
			UIState:      a.UI,
		})

	case SetConsentID:
		var id any
		if a.ID != nil {
			id = *a.ID
		}
		return state.with(Snapshot{ConsentID: id})

	case ChangePage:
		return state.with(Snapshot{
			CurrentPageID:    a.ID,
			CurrentPageIndex: a.Index,
		})

	default:
		if log != nil {
			log.WithField("action", ActionName(a)).Error("unknown action, state unchanged")
		}
		return state
	}
}
