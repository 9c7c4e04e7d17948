// Package watch reports changes to one file at a time.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

var ErrClosed = errors.New("watch: watcher closed")

// Change is a notification that the watched file was written, created,
// renamed or removed.
type Change struct {
	Path string
	Op   fsnotify.Op
}

// Watcher follows a single file. It watches the parent directory so the
// file survives writers that delete and recreate it. Notifications are
// buffered until the UI thread drains them.
type Watcher struct {
	fs  *fsnotify.Watcher
	log *logrus.Entry

	mu     sync.Mutex
	path   string
	dir    string
	closed bool

	changes chan Change
	done    chan struct{}
}

func New(log *logrus.Entry) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	w := &Watcher{
		fs:      fw,
		log:     log.WithField("component", "watch"),
		changes: make(chan Change, 64),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Swap stops watching the previous path and starts watching path. An empty
// path only unwatches.
func (w *Watcher) Swap(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		path = abs
	}
	if path == w.path {
		return nil
	}

	dir := filepath.Dir(path)
	if w.dir != "" && (path == "" || dir != w.dir) {
		if err := w.fs.Remove(w.dir); err != nil {
			w.log.WithError(err).WithField("dir", w.dir).Debug("unwatch failed")
		}
		w.dir = ""
	}
	w.path = ""
	if path == "" {
		return nil
	}
	if w.dir == "" {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dir = dir
	}
	w.path = path
	w.log.WithField("path", path).Debug("watching")
	return nil
}

// Drain returns the notifications received since the last call without
// blocking.
func (w *Watcher) Drain() []Change {
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

// Changes exposes the notification channel for callers that block on it.
func (w *Watcher) Changes() <-chan Change { return w.changes }

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.path, w.dir = "", ""
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.forward(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

func (w *Watcher) forward(ev fsnotify.Event) {
	if ev.Op&relevantOps == 0 {
		return
	}
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()
	if path == "" || filepath.Clean(ev.Name) != path {
		return
	}
	select {
	case w.changes <- Change{Path: path, Op: ev.Op}:
	default:
		// Drain collapses bursts anyway; a full buffer already holds a
		// notification for this path.
	}
}
