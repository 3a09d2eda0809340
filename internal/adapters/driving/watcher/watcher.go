// Package watcher runs inbox processing whenever new entries land in the inbox.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/lifeos-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lifeos-cli/internal/logger"
)

// DefaultDebounce groups the .md and .json writes of one capture into one run.
const DefaultDebounce = 500 * time.Millisecond

// Watcher processes the inbox after file activity settles.
// Runs happen on the Run goroutine only, so they never overlap.
type Watcher struct {
	dir       string
	processor driving.InboxProcessor
	debounce  time.Duration

	// OnRun, when set, receives the outcome of every processing run.
	OnRun func(*driving.ProcessResult, error)
}

// New creates a watcher for the inbox directory.
func New(dir string, processor driving.InboxProcessor, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:       dir,
		processor: processor,
		debounce:  debounce,
	}
}

// Run processes the inbox once, then again after each burst of changes,
// until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create inbox dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Info("Watching %s", w.dir)

	w.process(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("Inbox change: %s %s", event.Op, event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-timer.C:
			w.process(ctx)
		}
	}
}

func (w *Watcher) process(ctx context.Context) {
	result, err := w.processor.ProcessInbox(ctx)
	if err != nil {
		logger.Warn("Inbox processing failed: %v", err)
	}
	if w.OnRun != nil {
		w.OnRun(result, err)
	}
}

// relevant keeps creates, writes and renames of visible entry files.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	return ext == ".md" || ext == ".json"
}
