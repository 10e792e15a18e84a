package inspector

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the inspector
type KeyMap struct {
	// Playback
	Muted  key.Binding
	Paused key.Binding
	// Overlays
	Sidebar    key.Binding
	InfoDialog key.Binding
	ShareMenu  key.Binding
	Access     key.Binding
	Bookend    key.Binding
	Ad         key.Binding
	// Presentation
	CycleUI     key.Binding
	RTL         key.Binding
	Orientation key.Binding
	// Navigation
	NextPage key.Binding
	PrevPage key.Binding
	// Consent
	SetConsent   key.Binding
	ClearConsent key.Binding
	// Help and quit
	Help key.Binding
	Quit key.Binding
}

var defaultKeyMap = KeyMap{
	Muted: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "toggle muted"),
	),
	Paused: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle paused"),
	),
	Sidebar: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle sidebar"),
	),
	InfoDialog: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "toggle info dialog"),
	),
	ShareMenu: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "toggle share menu"),
	),
	Access: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle access paywall"),
	),
	Bookend: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "toggle bookend"),
	),
	Ad: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "toggle ad"),
	),
	CycleUI: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "cycle UI mode"),
	),
	RTL: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "toggle rtl"),
	),
	Orientation: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "toggle landscape"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous page"),
	),
	SetConsent: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "set consent id"),
	),
	ClearConsent: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear consent id"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

// ShortHelp returns the short help text for the keymap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Muted, k.Paused, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns the full help text for the keymap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Muted, k.Paused, k.CycleUI, k.RTL, k.Orientation},
		{k.Sidebar, k.InfoDialog, k.ShareMenu, k.Access, k.Bookend, k.Ad},
		{k.NextPage, k.PrevPage, k.SetConsent, k.ClearConsent},
		{k.Help, k.Quit},
	}
}
