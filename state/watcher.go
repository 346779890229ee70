package state

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/rolodex/logging"
	"github.com/grovetools/rolodex/records"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a snapshot file when it changes on disk.
//
// The parent directory is watched rather than the file itself, because Save
// replaces the file by rename and editors commonly do the same.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func([]records.Record)
	logger   *logrus.Entry

	mu    sync.Mutex
	timer *time.Timer

	// reloadMu keeps onChange calls from overlapping when a timer fires
	// while the previous reload is still running.
	reloadMu sync.Mutex
}

// NewWatcher creates a watcher for the snapshot at path. onChange receives the
// freshly loaded records after each settled change. A debounce of zero uses
// DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, onChange func([]records.Record)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.NewLogger("state-watcher"),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start processes file events. It blocks until the context is cancelled or
// the watcher is closed.
func (w *Watcher) Start(ctx context.Context) {
	defer w.stopTimer()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.watcher.Close()
}

// schedule (re)arms the debounce timer so only the last event of a burst
// triggers a reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	snap, err := Load(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("Failed to reload snapshot, keeping current records")
		return
	}
	w.logger.WithField("records", len(snap.Records)).Info("Snapshot changed on disk")
	if w.onChange != nil {
		w.onChange(snap.Records)
	}
}
