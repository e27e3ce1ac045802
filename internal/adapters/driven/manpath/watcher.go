package manpath

import (
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/manex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manex-cli/internal/logger"
)

// Ensure Watcher implements the driven port.
var _ driven.IndexWatcher = (*Watcher)(nil)

// Watcher watches the manual directories and reports changes so the
// section listing can be refreshed when pages are installed or removed.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
	done   chan struct{}
}

// NewWatcher watches the given manual paths. Paths that cannot be
// watched are skipped; the watcher is still usable as long as the
// fsnotify backend initialises.
func NewWatcher(paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			logger.Debug("not watching %s: %v", p, err)
		}
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// loop forwards filesystem events as coalesced change signals.
func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			// Non-blocking send: a pending signal already covers this event.
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("manual directory watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Events returns the coalesced change channel.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
