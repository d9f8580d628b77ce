package sorter

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/litescript/ls-media-sort/internal/library"
)

// Watcher monitors the incoming tree and triggers a sweep once the
// filesystem has been quiet for the debounce interval, so half-written
// downloads are not picked up between chunks.
type Watcher struct {
	watcher  *fsnotify.Watcher
	interval time.Duration
	debounce *time.Timer
	mu       sync.Mutex
	trigger  chan struct{}
	onSweep  func()
	log      library.Logger
	done     chan struct{}
}

// NewWatcher watches root and every directory below it. onSweep runs on
// the watcher's goroutine; a trigger arriving mid-sweep queues exactly one
// follow-up sweep.
func NewWatcher(root string, interval time.Duration, log library.Logger, onSweep func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		onSweep:  onSweep,
		log:      log,
		done:     make(chan struct{}),
	}

	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Only care about writes and creates; our own moves and
			// removals show up as renames and must not retrigger.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if event.Op&fsnotify.Create != 0 {
					if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
						if err := w.addTree(event.Name); err != nil {
							w.log.Warnf("watch %s: %v", event.Name, err)
						}
					}
				}
				w.scheduleSweep()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watch error: %v", err)

		case <-w.trigger:
			w.onSweep()

		case <-w.done:
			return
		}
	}
}

// scheduleSweep debounces rapid file changes
func (w *Watcher) scheduleSweep() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(w.interval, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

// addTree registers root and all directories below it. fsnotify watches
// are not recursive, so new directories get added as they appear.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}

// Stop closes the watcher
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
}
