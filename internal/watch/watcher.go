// Package watch keeps the displayed directory fresh. An fsnotify watcher
// follows exactly one directory at a time (the one the list is showing) and
// debounces filesystem events into refresh signals, so changes made outside
// the browser show up without a manual reload.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"filey/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Debounce window: a burst of events in one directory becomes one refresh.
const debounce = 150 * time.Millisecond

// Watcher monitors the currently displayed directory for changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	refresh   chan string
	stopChan  chan struct{}

	mutex   sync.Mutex
	dir     string
	running bool
}

// New creates a stopped watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		refresh:   make(chan string, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Watch repoints the watcher at dir, dropping the previously watched
// directory. Called on every navigation.
func (w *Watcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.Debugf("could not stop watching %s: %v", w.dir, err)
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// Refresh delivers the directory that changed, debounced.
func (w *Watcher) Refresh() <-chan string {
	return w.refresh
}

// Start begins the event loop.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !relevant(event.Op) {
					continue
				}
				// Reset the debounce window.
				if timer == nil {
					timer = time.NewTimer(debounce)
					timerC = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(debounce)
				}

			case <-timerC:
				timer = nil
				timerC = nil
				w.mutex.Lock()
				dir := w.dir
				w.mutex.Unlock()
				select {
				case w.refresh <- dir:
				default:
					// A refresh is already pending; one is enough.
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher. It cannot be restarted afterwards.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("error closing fsnotify watcher")
	}
	w.running = false
}

// IsRunning reports whether the event loop is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.running
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.dir
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Create) || op.Has(fsnotify.Remove) ||
		op.Has(fsnotify.Rename) || op.Has(fsnotify.Write)
}
