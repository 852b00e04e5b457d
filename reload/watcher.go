// Package reload watches shader source files and reports when they change.
package reload

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher reports writes to a fixed set of files. Directories are watched
// rather than the files themselves so editors that save by renaming a
// temporary file are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan string
	done    chan struct{}
	wake    func()
}

// New starts watching paths. wake, if not nil, is called from the watcher
// goroutine after every reported change; use it to interrupt a blocking event
// wait on the render thread.
func New(paths []string, wake func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		files:   make(map[string]bool),
		changed: make(chan string, 16),
		done:    make(chan struct{}),
		wake:    wake,
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			select {
			case w.changed <- name:
			default:
				// reader is behind; it reloads everything on the next event anyway
			}
			if w.wake != nil {
				w.wake()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("shader watcher: %v", err)
		}
	}
}

// Drain reports whether any change is pending and empties the queue.
func (w *Watcher) Drain() bool {
	pending := false
	for {
		select {
		case <-w.changed:
			pending = true
		default:
			return pending
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
