// Package watch raises debounced notifications when a file backing a
// buffer changes on disk. Editors that save through a rename emit a
// burst of events per save; the quiet period folds a burst into one
// notification.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"diffpad/internal/log"
)

// DefaultQuiet is the settle window after the last event before a
// notification fires.
const DefaultQuiet = 100 * time.Millisecond

// Event names a watched target that changed on disk.
type Event struct {
	Key  string
	Path string
}

type Watcher struct {
	fw    *fsnotify.Watcher
	quiet time.Duration

	mu      sync.Mutex
	targets map[string]string // key -> absolute path
	dirs    map[string]int    // watched directory refcounts

	events chan Event
	done   chan struct{}
	stop   sync.Once
}

// New opens the watcher and starts its loop.
func New(quiet time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("open watcher: %w", err)
	}
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	w := &Watcher{
		fw:      fw,
		quiet:   quiet,
		targets: make(map[string]string),
		dirs:    make(map[string]int),
		events:  make(chan Event, 8),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events delivers at most one notification per target per quiet window.
func (w *Watcher) Events() <-chan Event { return w.events }

// Watch points key at path, replacing any previous target for the key.
// The parent directory is watched rather than the file itself, so saves
// that go through a rename keep being seen.
func (w *Watcher) Watch(key, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropLocked(key)
	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.targets[key] = abs
	log.Debug(log.CatWatch, "watching", "key", key, "path", abs)
	return nil
}

// Forget stops watching key's target. Unknown keys are a no-op.
func (w *Watcher) Forget(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropLocked(key)
}

func (w *Watcher) dropLocked(key string) {
	abs, ok := w.targets[key]
	if !ok {
		return
	}
	delete(w.targets, key)
	dir := filepath.Dir(abs)
	if w.dirs[dir]--; w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		_ = w.fw.Remove(dir)
	}
}

// Stop halts the loop and closes the underlying watcher. Safe to call
// more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stop.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	timer := time.NewTimer(w.quiet)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]string)

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			key, abs, ok := w.match(ev.Name)
			if !ok {
				continue
			}
			pending[key] = abs
			timer.Reset(w.quiet)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatWatch, "watch error", "err", err)
		case <-timer.C:
			for key, path := range pending {
				select {
				case w.events <- Event{Key: key, Path: path}:
				default:
					// A stale unread notification already covers it.
				}
			}
			clear(pending)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) match(name string) (string, string, bool) {
	cleaned := filepath.Clean(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	for key, abs := range w.targets {
		if cleaned == abs {
			return key, abs, true
		}
	}
	return "", "", false
}
