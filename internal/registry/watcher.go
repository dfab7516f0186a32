package registry

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chisom-ui/chisom/internal/logger"
)

const watchDebounce = 200 * time.Millisecond

// Watcher reloads the registry when its backing file changes and notifies
// listeners. Rapid successive writes are debounced into one notification.
type Watcher struct {
	registry *Registry
	watcher  *fsnotify.Watcher
	log      *logger.Logger
	events   chan struct{}

	debounceMu    sync.Mutex
	debounceTimer *time.Timer

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewWatcher starts watching the registry file's directory. Watching the
// directory rather than the file survives the atomic rename Save performs.
func NewWatcher(registry *Registry, log *logger.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create registry watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(registry.Path())); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch registry directory: %w", err)
	}

	w := &Watcher{
		registry: registry,
		watcher:  fsWatcher,
		log:      log,
		events:   make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}

	go w.eventLoop()
	return w, nil
}

// Events delivers one notification per (debounced) registry change.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)

		w.debounceMu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.debounceMu.Unlock()

		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn(err, "registry watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.registry.Path()) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(watchDebounce, w.reload)
}

func (w *Watcher) reload() {
	if err := w.registry.Load(); err != nil {
		w.log.Warn(err, "failed to reload registry after change")
		return
	}

	w.log.Debug("registry reloaded")
	select {
	case w.events <- struct{}{}:
	default:
	}
}
