// Package inspector is a live TUI view of a story state store: it shows
// every property's current value and dispatches actions through keybindings,
// highlighting the properties changed by the latest dispatch.
package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storykit/core/config"
	"github.com/storykit/core/embedmode"
	"github.com/storykit/core/store"
	"github.com/storykit/core/tui/theme"
)

// PresetsReloadedMsg is sent when the watched preset file changes. The
// inspector rebuilds its store from the new presets, mirroring a document
// reload: the overlay happens only at construction.
type PresetsReloadedMsg struct {
	Presets config.Presets
}

// tracker records which properties changed in which dispatch. It is shared
// by reference between the model and the store subscriptions so listener
// callbacks survive bubbletea's value-copy updates.
type tracker struct {
	seq     int
	changed map[store.Property]int
}

// Model is the inspector component.
type Model struct {
	store   *store.Store
	presets config.Presets
	mode    embedmode.Mode
	pages   []string
	track   *tracker
	theme   *theme.Theme
	keys    KeyMap
	help    help.Model
	width   int
	height  int
}

// New creates an inspector for a fresh store built from the given presets
// and embed mode. The pages slice provides page IDs for navigation.
func New(presets config.Presets, mode embedmode.Mode, pages []string) Model {
	if len(pages) == 0 {
		pages = []string{"cover", "page-1", "page-2", "page-3"}
	}
	m := Model{
		presets: presets,
		mode:    mode,
		pages:   pages,
		theme:   theme.DefaultTheme,
		keys:    defaultKeyMap,
		help:    help.New(),
	}
	m.rebuild()
	return m
}

// rebuild constructs a fresh store from the current presets and subscribes
// the change tracker to every property.
func (m *Model) rebuild() {
	m.track = &tracker{changed: make(map[store.Property]int)}
	m.store = store.New(config.InitialSnapshot(m.presets, m.mode))

	track := m.track
	for _, p := range store.Properties {
		p := p
		m.store.Subscribe(p, func(any) {
			track.changed[p] = track.seq
		}, false)
	}
}

// Store exposes the underlying store, mainly for tests.
func (m Model) Store() *store.Store {
	return m.store
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case PresetsReloadedMsg:
		m.presets = msg.Presets
		m.rebuild()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			m.handleAction(msg)
		}
	}

	return m, nil
}

// handleAction maps a key press to a dispatch against the store. Keys with
// no binding (and page moves past either end) dispatch nothing and leave the
// change sequence alone, so the previous dispatch's highlight survives.
func (m *Model) handleAction(msg tea.KeyMsg) {
	var a store.Action

	switch {
	case key.Matches(msg, m.keys.Muted):
		a = store.ToggleMuted{On: !m.boolOf(store.MutedState)}
	case key.Matches(msg, m.keys.Paused):
		a = store.TogglePaused{On: !m.boolOf(store.PausedState)}
	case key.Matches(msg, m.keys.Sidebar):
		a = store.ToggleSidebar{On: !m.boolOf(store.SidebarState)}
	case key.Matches(msg, m.keys.InfoDialog):
		a = store.ToggleInfoDialog{On: !m.boolOf(store.InfoDialogState)}
	case key.Matches(msg, m.keys.ShareMenu):
		a = store.ToggleShareMenu{On: !m.boolOf(store.ShareMenuState)}
	case key.Matches(msg, m.keys.Access):
		a = store.ToggleAccess{On: !m.boolOf(store.AccessState)}
	case key.Matches(msg, m.keys.Bookend):
		a = store.ToggleBookend{On: !m.boolOf(store.BookendState)}
	case key.Matches(msg, m.keys.Ad):
		a = store.ToggleAd{On: !m.boolOf(store.AdState)}
	case key.Matches(msg, m.keys.RTL):
		a = store.ToggleRTL{On: !m.boolOf(store.RTLState)}
	case key.Matches(msg, m.keys.Orientation):
		a = store.ToggleLandscape{On: !m.boolOf(store.LandscapeState)}
	case key.Matches(msg, m.keys.CycleUI):
		cur, _ := m.store.Get(store.UIState).(store.UIType)
		a = store.ToggleUI{UI: (cur + 1) % 3}
	case key.Matches(msg, m.keys.NextPage):
		a = m.pageAction(1)
	case key.Matches(msg, m.keys.PrevPage):
		a = m.pageAction(-1)
	case key.Matches(msg, m.keys.SetConsent):
		id := "consent-demo"
		a = store.SetConsentID{ID: &id}
	case key.Matches(msg, m.keys.ClearConsent):
		a = store.SetConsentID{}
	}

	if a == nil {
		return
	}
	m.track.seq++
	m.store.Dispatch(a)
}

// pageAction returns a ChangePage action, or nil at the ends of the deck.
func (m *Model) pageAction(delta int) store.Action {
	idx, _ := m.store.Get(store.CurrentPageIndex).(int)
	next := idx + delta
	if next < 0 || next >= len(m.pages) {
		return nil
	}
	return store.ChangePage{ID: m.pages[next], Index: next}
}

func (m *Model) boolOf(p store.Property) bool {
	b, _ := m.store.Get(p).(bool)
	return b
}

// View renders the inspector.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Header.Render(fmt.Sprintf("story state · mode=%s", m.mode)))
	b.WriteString("\n\n")

	for _, p := range store.Properties {
		name := fmt.Sprintf("%-24s", string(p))
		value := m.renderValue(m.store.Get(p))

		row := fmt.Sprintf("  %s %s", m.theme.Muted.Render(name), value)
		if seq, ok := m.track.changed[p]; ok && seq == m.track.seq && m.track.seq > 0 {
			row = fmt.Sprintf("  %s %s %s", m.theme.Bold.Render(name), value, m.theme.Highlight.Render("●"))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderValue(v any) string {
	switch v := v.(type) {
	case nil:
		return m.theme.Muted.Render("null")
	case bool:
		if v {
			return m.theme.Success.Render("true")
		}
		return m.theme.Error.Render("false")
	case store.UIType:
		return m.theme.Info.Render(v.String())
	case string:
		if v == "" {
			return m.theme.Muted.Render(`""`)
		}
		return m.theme.Accent.Render(v)
	default:
		return lipgloss.NewStyle().Render(fmt.Sprintf("%v", v))
	}
}
