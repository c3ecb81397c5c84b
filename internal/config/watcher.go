package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a config file's parent directory for writes or
// editor-style rename-replace and invokes onChange after a short debounce.
//
// Per spec.md §9 ("global mutable state" design note), the watcher never
// mutates window-manager state itself; onChange is expected to post a
// sentinel event to the control loop rather than act directly, so that all
// state mutation still happens on the single event-loop thread.
type Watcher struct {
	path     string
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching path's parent directory. onChange is called
// (from the watcher's own goroutine) whenever path is written or replaced.
func NewWatcher(path string, logger *slog.Logger, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		logger:   logger,
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	const debounce = 150 * time.Millisecond
	var timer *time.Timer

	fire := func() {
		w.logger.Info("config file changed, reloading", "path", w.path)
		w.onChange()
	}

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, fire)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
