package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/storykit/core/logging"
)

// Watcher watches a preset file for changes and invokes a callback with the
// freshly loaded presets. Editors replace files rather than writing in
// place, so the watch is on the containing directory and filtered to the
// target file.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	debounce   time.Duration
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	onReload   func(Presets)
}

// NewWatcher creates a watcher for the given preset file. The onReload
// callback receives the built-in presets with the reloaded file overlaid.
func NewWatcher(path string, debounce time.Duration, onReload func(Presets)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		watcher:  watcher,
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logging.NewLogger("preset-watcher"),
		onReload: onReload,
	}, nil
}

// Start begins watching for preset changes. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.handleChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// handleChange reloads the preset file with debouncing.
func (w *Watcher) handleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	elapsed := time.Since(w.lastChange)
	if elapsed < w.debounce {
		w.logger.Debugf("debounced: %s (only %v since last change)", filepath.Base(w.path), elapsed)
		return
	}
	w.lastChange = time.Now()

	presets, err := LoadWithBuiltin(w.path)
	if err != nil {
		w.logger.WithError(err).Errorf("preset reload failed: %s", filepath.Base(w.path))
		return
	}

	w.logger.Infof("presets reloaded: %s", filepath.Base(w.path))
	if w.onReload != nil {
		w.onReload(presets)
	}
}
