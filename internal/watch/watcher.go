// Package watch monitors the source data file and reports changes so
// the UI can reload its value counts.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"facet/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is one detected modification of the watched file.
type Change struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher reports write/create events for a single file using
// fsnotify. The parent directory is watched, not the file itself:
// editors that replace files atomically (rename over) would otherwise
// detach the watch.
type Watcher struct {
	path       string
	changeChan chan Change
	stopChan   chan struct{}
	fsWatcher  *fsnotify.Watcher

	mutex   sync.RWMutex
	running bool
}

// New creates a watcher for path. The file must exist.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("accessing %s: %w", abs, err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:       abs,
		changeChan: make(chan Change, 10),
		fsWatcher:  fsWatcher,
	}, nil
}

// Changes returns the channel delivering file change events. It is
// closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changeChan
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
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
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if event.Name != w.path {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				// The file may already be gone again (temp files,
				// atomic renames in progress).
				if _, err := os.Stat(event.Name); err != nil {
					continue
				}

				change := Change{Path: event.Name, Timestamp: time.Now(), Op: event.Op}
				select {
				case w.changeChan <- change:
				default:
					log.LogWithFields(log.F("file", event.Name)).Warn("change channel full, dropped event")
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				return
			}
		}
	}()

	log.LogWithFields(log.F("file", w.path)).Info("watching for changes")
	return nil
}

// Stop halts the event loop and closes the change channel.
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
	close(w.changeChan)
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
