package store

// Action is a named operation submitted to the reducer. The union is sealed:
// only the types in this file implement it, and the reducer's switch is the
// single place actions are interpreted.
type Action interface {
	isAction()
}

// ToggleAccess shows or hides the access paywall. Showing it also pauses
// playback.
type ToggleAccess struct{ On bool }

// ToggleAd marks an ad as visible or hidden.
type ToggleAd struct{ On bool }

// ToggleBookend shows or hides the bookend. Ignored when the bookend
// capability is disabled by the embed-mode preset.
type ToggleBookend struct{ On bool }

// ToggleInfoDialog shows or hides the info dialog, pausing playback while
// the dialog is open.
type ToggleInfoDialog struct{ On bool }

// ToggleStoryHasAudio records whether any page of the story has audio.
type ToggleStoryHasAudio struct{ On bool }

// ToggleLandscape records the viewport orientation.
type ToggleLandscape struct{ On bool }

// ToggleMuted mutes or unmutes playback.
type ToggleMuted struct{ On bool }

// TogglePageHasAudio records whether the current page has audio.
type TogglePageHasAudio struct{ On bool }

// TogglePaused pauses or resumes playback.
type TogglePaused struct{ On bool }

// ToggleRTL records the text direction of the story.
type ToggleRTL struct{ On bool }

// ToggleSidebar opens or closes the sidebar, pausing playback while it is
// open.
type ToggleSidebar struct{ On bool }

// ToggleHasSidebar records whether the story declares a sidebar at all.
type ToggleHasSidebar struct{ On bool }

// ToggleSupportedBrowser records whether the host browser is supported.
type ToggleSupportedBrowser struct{ On bool }

// ToggleShareMenu opens or closes the share menu, pausing playback while it
// is open.
type ToggleShareMenu struct{ On bool }

// ToggleUI switches the presentation mode.
type ToggleUI struct{ UI UIType }

// SetConsentID records the consent identifier. A nil ID clears it.
type SetConsentID struct{ ID *string }

// ChangePage navigates to a page.
type ChangePage struct {
	ID    string
	Index int
}

func (ToggleAccess) isAction()           {}
func (ToggleAd) isAction()               {}
func (ToggleBookend) isAction()          {}
func (ToggleInfoDialog) isAction()       {}
func (ToggleStoryHasAudio) isAction()    {}
func (ToggleLandscape) isAction()        {}
func (ToggleMuted) isAction()            {}
func (TogglePageHasAudio) isAction()     {}
func (TogglePaused) isAction()           {}
func (ToggleRTL) isAction()              {}
func (ToggleSidebar) isAction()          {}
func (ToggleHasSidebar) isAction()       {}
func (ToggleSupportedBrowser) isAction() {}
func (ToggleShareMenu) isAction()        {}
func (ToggleUI) isAction()               {}
func (SetConsentID) isAction()           {}
func (ChangePage) isAction()             {}

// ActionName returns the canonical wire name of an action, as accepted by
// ParseAction. Unknown implementations return "unknown".
func ActionName(a Action) string {
	switch a.(type) {
	case ToggleAccess:
		return "toggle_access"
	case ToggleAd:
		return "toggle_ad"
	case ToggleBookend:
		return "toggle_bookend"
	case ToggleInfoDialog:
		return "toggle_info_dialog"
	case ToggleStoryHasAudio:
		return "toggle_story_has_audio"
	case ToggleLandscape:
		return "toggle_landscape"
	case ToggleMuted:
		return "toggle_muted"
	case TogglePageHasAudio:
		return "toggle_page_has_audio"
	case TogglePaused:
		return "toggle_paused"
	case ToggleRTL:
		return "toggle_rtl"
	case ToggleSidebar:
		return "toggle_sidebar"
	case ToggleHasSidebar:
		return "toggle_has_sidebar"
	case ToggleSupportedBrowser:
		return "toggle_supported_browser"
	case ToggleShareMenu:
		return "toggle_share_menu"
	case ToggleUI:
		return "toggle_ui"
	case SetConsentID:
		return "set_consent_id"
	case ChangePage:
		return "change_page"
	default:
		return "unknown"
	}
}
