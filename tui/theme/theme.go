package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// --- Night (dark) palette ---
const (
	nightGreen              = "#98BB6C"
	nightYellow             = "#FF9E3B"
	nightRed                = "#FF5D62"
	nightCyan               = "#7E9CD8"
	nightBlue               = "#7FB4CA"
	nightViolet             = "#957FB8"
	nightLightText          = "#DCD7BA"
	nightMutedText          = "#727169"
	nightBorder             = "#363646"
	nightSelectedBackground = "#223249"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
)

// Colors encapsulates the palette used by a theme.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds the pre-configured styles shared by storykit tools.
type Theme struct {
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

func newNightColors() Colors {
	return Colors{
		Green:              lipgloss.Color(nightGreen),
		Yellow:             lipgloss.Color(nightYellow),
		Red:                lipgloss.Color(nightRed),
		Cyan:               lipgloss.Color(nightCyan),
		Blue:               lipgloss.Color(nightBlue),
		Violet:             lipgloss.Color(nightViolet),
		LightText:          lipgloss.Color(nightLightText),
		MutedText:          lipgloss.Color(nightMutedText),
		Border:             lipgloss.Color(nightBorder),
		SelectedBackground: lipgloss.Color(nightSelectedBackground),
	}
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Cyan:               lipgloss.Color(terminalCyan),
		Blue:               lipgloss.Color(terminalBlue),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
	}
}

// DefaultTheme is the default theme instance for storykit tools.
var DefaultTheme = NewTheme()

// NewTheme constructs a theme from the STORY_THEME environment variable,
// falling back to the night palette.
func NewTheme() *Theme {
	switch os.Getenv("STORY_THEME") {
	case "terminal":
		return newTheme(newTerminalColors())
	default:
		return newTheme(newNightColors())
	}
}

func newTheme(c Colors) *Theme {
	return &Theme{
		Colors: c,

		Header: lipgloss.NewStyle().Bold(true).Foreground(c.Blue),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(c.Violet),

		Success: lipgloss.NewStyle().Foreground(c.Green),
		Error:   lipgloss.NewStyle().Foreground(c.Red),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow),
		Info:    lipgloss.NewStyle().Foreground(c.Cyan),

		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(c.MutedText),
		Selected: lipgloss.NewStyle().Background(c.SelectedBackground).Foreground(c.LightText),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(c.Blue).BorderBottom(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(c.Border),
		TableBorder: lipgloss.NewStyle().Foreground(c.Border),

		Highlight: lipgloss.NewStyle().Foreground(c.Yellow),
		Accent:    lipgloss.NewStyle().Foreground(c.Cyan),
	}
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}
