package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/storykit/core/tui/theme"
)

// domainKeys are structured fields the store and config packages attach to
// their diagnostics. They are rendered accented so a fail-soft event (an
// unknown property or action) stands out from free-form fields.
var domainKeys = map[string]bool{
	"property": true,
	"action":   true,
	"mode":     true,
}

// TextFormatter renders entries as a single line:
// timestamp, level, component, optional caller, message, then fields.
type TextFormatter struct {
	Config FormatConfig
}

// Format implements logrus.Formatter.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	t := theme.DefaultTheme
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(t.Muted.Render(entry.Time.Format("2006-01-02 15:04:05")))
		b.WriteByte(' ')
	}

	b.WriteString(levelTag(entry.Level, t))

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		fmt.Fprintf(&b, " [%s]", t.Accent.Render(fmt.Sprintf("%v", component)))
	}

	if entry.HasCaller() {
		fmt.Fprintf(&b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File),
			entry.Caller.Line,
			filepath.Base(entry.Caller.Function))
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	// Remaining fields in sorted order so repeated events diff cleanly.
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		name := key
		if domainKeys[key] {
			name = t.Accent.Render(key)
		}
		fmt.Fprintf(&b, " %s=%v", name, entry.Data[key])
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// levelTag renders the bracketed level with the matching status style.
// logrus spells WARN as "warning"; the tag uses the short form.
func levelTag(level logrus.Level, t *theme.Theme) string {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return t.Error.Render(fmt.Sprintf("[%s]", strings.ToUpper(level.String())))
	case logrus.WarnLevel:
		return t.Warning.Render("[WARN]")
	case logrus.DebugLevel, logrus.TraceLevel:
		return t.Muted.Render(fmt.Sprintf("[%s]", strings.ToUpper(level.String())))
	default:
		return fmt.Sprintf("[%s]", strings.ToUpper(level.String()))
	}
}
