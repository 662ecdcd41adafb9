// Package watcher notices edits to the graph file while the server runs.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/tide/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 200 * time.Millisecond

var _ ports.GraphWatcher = (*Watcher)(nil)

// Watcher implements ports.GraphWatcher for a single file using fsnotify.
//
// The parent directory is watched rather than the file itself so that editors
// which save by renaming a temporary file over the original keep being seen.
type Watcher struct {
	path   string
	window time.Duration
	logger ports.Logger
}

// New creates a watcher for the file at path.
func New(path string, log ports.Logger) *Watcher {
	return &Watcher{
		path:   filepath.Clean(path),
		window: DefaultDebounceWindow,
		logger: log,
	}
}

// WithWindow sets the debounce window.
func (w *Watcher) WithWindow(d time.Duration) *Watcher {
	w.window = d
	return w
}

// Watch blocks until ctx is canceled, calling onChange after the file is
// written, created, renamed or removed.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fw.Close() }()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch graph directory"), "dir", dir)
	}

	deb := NewDebouncer(w.window, onChange)
	defer deb.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				deb.Trigger()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("graph watcher: " + err.Error())
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
