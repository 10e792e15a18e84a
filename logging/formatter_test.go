package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func formatEntry(t *testing.T, f *TextFormatter, entry *logrus.Entry) string {
	t.Helper()
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	return string(out)
}

func TestTextFormatterLine(t *testing.T) {
	f := &TextFormatter{}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "get of unknown state property",
		Data: logrus.Fields{
			"component": "store",
			"property":  "gravitystate",
		},
	}

	line := formatEntry(t, f, entry)
	if !strings.Contains(line, "2026-08-29 12:00:00") {
		t.Errorf("missing timestamp: %q", line)
	}
	if !strings.Contains(line, "ERROR") {
		t.Errorf("missing level tag: %q", line)
	}
	if !strings.Contains(line, "store") {
		t.Errorf("missing component: %q", line)
	}
	if !strings.Contains(line, "get of unknown state property") {
		t.Errorf("missing message: %q", line)
	}
	if !strings.Contains(line, "=gravitystate") {
		t.Errorf("missing property field: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line must end with newline: %q", line)
	}
}

func TestTextFormatterWarnShortForm(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true}}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.WarnLevel,
		Message: "slow reload",
	}

	line := formatEntry(t, f, entry)
	if !strings.Contains(line, "WARN") || strings.Contains(line, "WARNING") {
		t.Errorf("want short WARN tag: %q", line)
	}
}

func TestTextFormatterFieldsSorted(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "dispatch",
		Data: logrus.Fields{
			"zebra":  1,
			"action": "toggle_muted",
			"mango":  2,
		},
	}

	line := formatEntry(t, f, entry)
	action := strings.Index(line, "=toggle_muted")
	mango := strings.Index(line, "mango=")
	zebra := strings.Index(line, "zebra=")
	if action == -1 || mango == -1 || zebra == -1 {
		t.Fatalf("missing fields: %q", line)
	}
	if !(action < mango && mango < zebra) {
		t.Errorf("fields not in sorted order: %q", line)
	}
}

func TestTextFormatterDisableFlags(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "quiet",
		Data:    logrus.Fields{"component": "store"},
	}

	line := formatEntry(t, f, entry)
	if strings.Contains(line, "store") {
		t.Errorf("component should be suppressed: %q", line)
	}
}
