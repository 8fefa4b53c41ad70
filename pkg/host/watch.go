package host

import (
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a loaded document's source file (and any `<link>`ed
// stylesheets) for changes and calls OnChange, debounced, so a save in an
// editor triggers a hot reload instead of a flood of re-renders mid-write.
// Grounded on fsnotify's direct use in the AleutianLocal and fb2cng repos in
// the pack — the teacher itself has no file-watching of its own.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	OnChange func(path string)

	done chan struct{}
}

// NewWatcher creates a Watcher with the given debounce window.
func NewWatcher(debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher: fw, debounce: debounce, logger: logger, done: make(chan struct{})}, nil
}

// Add starts watching path for writes.
func (w *Watcher) Add(path string) error {
	return w.watcher.Add(path)
}

// Run processes fsnotify events until Close is called, debouncing bursts of
// writes to the same path (editors often emit several in quick succession
// for one save) before invoking OnChange. Everything here runs on a single
// goroutine, so the pending set needs no locking.
func (w *Watcher) Run() {
	pending := make(map[string]bool)
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending[ev.Name] = true
			timer.Reset(w.debounce)
		case <-timer.C:
			for path := range pending {
				if w.OnChange != nil {
					w.OnChange(path)
				}
			}
			pending = make(map[string]bool)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
		case <-w.done:
			return
		}
	}
}

// Close stops Run and releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
