// Package store implements the observable state container for a story:
// a snapshot of named UI properties, a pure reducer that applies typed
// actions, and per-property subscriber lists notified when a value changes.
package store

import (
	"github.com/storykit/core/errors"
)

// Property is a state key. The set of properties is closed: every property
// is present in the initial snapshot and no property is ever added or
// removed at runtime.
type Property string

// Capability flags. These are set by the embed-mode preset at construction
// and gate what the reducer is allowed to change.
const (
	CanShowBookend       Property = "canshowbookend"
	CanShowPageHelp      Property = "canshowpagehelp"
	CanShowSharingUIs    Property = "canshowsharinguis"
	CanShowSystemButtons Property = "canshowsystembuttons"
)

// UI state flags.
const (
	AccessState           Property = "accessstate"
	AdState               Property = "adstate"
	BookendState          Property = "bookendstate"
	DesktopState          Property = "desktopstate"
	HasSidebarState       Property = "hassidebarstate"
	InfoDialogState       Property = "infodialogstate"
	LandscapeState        Property = "landscapestate"
	MutedState            Property = "mutedstate"
	PageHasAudioState     Property = "pagehasaudiostate"
	PausedState           Property = "pausedstate"
	RTLState              Property = "rtlstate"
	ShareMenuState        Property = "sharemenustate"
	SidebarState          Property = "sidebarstate"
	StoryHasAudioState    Property = "storyhasaudiostate"
	SupportedBrowserState Property = "supportedbrowserstate"
)

// Navigation and consent state.
const (
	ConsentID        Property = "consentid"
	CurrentPageID    Property = "currentpageid"
	CurrentPageIndex Property = "currentpageindex"
	UIState          Property = "uistate"
)

// Properties lists every known property in display order.
var Properties = []Property{
	CanShowBookend,
	CanShowPageHelp,
	CanShowSharingUIs,
	CanShowSystemButtons,
	AccessState,
	AdState,
	BookendState,
	DesktopState,
	HasSidebarState,
	InfoDialogState,
	LandscapeState,
	MutedState,
	PageHasAudioState,
	PausedState,
	RTLState,
	ShareMenuState,
	SidebarState,
	StoryHasAudioState,
	SupportedBrowserState,
	UIState,
	ConsentID,
	CurrentPageID,
	CurrentPageIndex,
}

var knownProperties = func() map[Property]struct{} {
	m := make(map[Property]struct{}, len(Properties))
	for _, p := range Properties {
		m[p] = struct{}{}
	}
	return m
}()

// Known reports whether p is a member of the closed property set.
func (p Property) Known() bool {
	_, ok := knownProperties[p]
	return ok
}

// ParseProperty resolves a property from its external name. Like
// ParseAction it is the boundary for tooling input, and unlike Get it
// reports unknown names as a coded error instead of logging.
func ParseProperty(name string) (Property, error) {
	p := Property(name)
	if !p.Known() {
		return "", errors.UnknownProperty(name)
	}
	return p, nil
}

// UIType identifies the presentation mode of the story viewer.
type UIType int

const (
	UIMobile UIType = iota
	UIDesktop
	UIScroll
)

// String returns the canonical name of the UI type.
func (u UIType) String() string {
	switch u {
	case UIDesktop:
		return "desktop"
	case UIScroll:
		return "scroll"
	default:
		return "mobile"
	}
}

// ParseUIType resolves a UI type from its canonical name.
func ParseUIType(name string) (UIType, bool) {
	switch name {
	case "mobile":
		return UIMobile, true
	case "desktop":
		return UIDesktop, true
	case "scroll":
		return UIScroll, true
	default:
		return UIMobile, false
	}
}

// Snapshot is the full property-to-value mapping at a point in time. It is
// immutable by convention: the reducer never writes to a snapshot it was
// given, it clones before changing anything.
type Snapshot map[Property]any

// with returns a copy of s with the patch applied. Keys absent from the
// patch keep their current value, so no property is ever dropped.
func (s Snapshot) with(patch Snapshot) Snapshot {
	next := make(Snapshot, len(s))
	for k, v := range s {
		next[k] = v
	}
	for k, v := range patch {
		next[k] = v
	}
	return next
}

// DefaultSnapshot returns the hard-coded initial state, before any
// embed-mode preset is overlaid.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		CanShowBookend:        true,
		CanShowPageHelp:       true,
		CanShowSharingUIs:     true,
		CanShowSystemButtons:  true,
		AccessState:           false,
		AdState:               false,
		BookendState:          false,
		DesktopState:          false,
		HasSidebarState:       false,
		InfoDialogState:       false,
		LandscapeState:        false,
		MutedState:            true,
		PageHasAudioState:     false,
		PausedState:           false,
		RTLState:              false,
		ShareMenuState:        false,
		SidebarState:          false,
		StoryHasAudioState:    false,
		SupportedBrowserState: true,
		UIState:               UIMobile,
		ConsentID:             nil,
		CurrentPageID:         "",
		CurrentPageIndex:      0,
	}
}
