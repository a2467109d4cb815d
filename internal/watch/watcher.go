// Package watch observes the file backend's data directory and reports
// external changes, so a second process editing the vault shows up in a
// running gallery session.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrijs2005/memoryvault/internal/logging"
)

// Watcher debounces filesystem events on one directory and invokes the
// callback once per burst of changes.
type Watcher struct {
	dir      string
	debounce time.Duration
	log      logging.Logger
	onChange func(ctx context.Context)
}

func New(dir string, debounce time.Duration, log logging.Logger, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{dir: dir, debounce: debounce, log: log, onChange: onChange}
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.log.Debug(ctx, "watching", "dir", w.dir, "debounce", w.debounce)

	// The timer starts stopped; each relevant event re-arms it, so the
	// callback fires once per burst after the quiet period.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if w.shouldIgnore(event) {
				continue
			}
			w.log.Debug(ctx, "event received", "name", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			w.onChange(ctx)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error(ctx, "watcher error", "error", wErr)
		}
	}
}

// shouldIgnore filters out events the store did not cause a visible
// change with: chmod noise and the atomic-write temp files.
func (w *Watcher) shouldIgnore(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return true
	}
	return strings.HasPrefix(filepath.Base(event.Name), ".tmp-")
}
