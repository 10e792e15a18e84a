package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storykit/core/testutil"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "presets.yml", "version: \"1\"\n")

	reloaded := make(chan Presets, 1)
	w, err := NewWatcher(path, 10*time.Millisecond, func(p Presets) {
		select {
		case reloaded <- p:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watch loop a moment before writing.
	time.Sleep(50 * time.Millisecond)

	content := "version: \"3\"\nmodes:\n  no-sharing:\n    muted: true\n"
	testutil.WriteFile(t, dir, "presets.yml", content)

	select {
	case p := <-reloaded:
		require.Equal(t, "3", p.Version)
		require.NotNil(t, p.Modes["no-sharing"].Muted)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for preset reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "presets.yml", "version: \"1\"\n")

	reloaded := make(chan Presets, 1)
	w, err := NewWatcher(path, 10*time.Millisecond, func(p Presets) {
		reloaded <- p
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	testutil.WriteFile(t, dir, "other.yml", "x: 1\n")

	select {
	case <-reloaded:
		t.Fatal("unrelated file should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
