// Package document binds one loaded image to one view per tab and keeps it
// in sync with the file on disk.
package document

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"

	"gvview/internal/platform"
)

// View shows a document inside a tab.
type View interface {
	Kind() Kind
	// Load replaces the visual. On error the view is unchanged.
	Load(path string) error
	// Reload refreshes the visual from the same path. On error the view
	// is unchanged.
	Reload(path string) error
	Reset()
	// Cancel abandons a gesture whose button release will not arrive.
	Cancel()
	Resize(w, h float64)
	HandleInput(ev platform.Event) bool
	// Zoom scales relative to the current zoom around the view center.
	Zoom(factor float64)
	ZoomLevel() float64
	// Snapshot returns what the view currently shows.
	Snapshot() image.Image
}

type ViewFactory interface {
	NewView(kind Kind) View
}

// PathWatcher follows at most one path; Swap replaces it.
type PathWatcher interface {
	Swap(path string) error
}

type Host struct {
	factory ViewFactory
	watcher PathWatcher
	log     *logrus.Entry

	view   View
	path   string
	digest [blake2b.Size256]byte
	width  float64
	height float64
}

func NewHost(factory ViewFactory, watcher PathWatcher, log *logrus.Entry) *Host {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Host{factory: factory, watcher: watcher, log: log.WithField("component", "document")}
}

func (h *Host) View() View    { return h.view }
func (h *Host) Path() string  { return h.path }
func (h *Host) Loaded() bool  { return h.view != nil }
func (h *Host) Title() string { return filepath.Base(h.path) }

// Open loads path into a fresh view, resets it and moves the file watch to
// path. Unsupported extensions and undecodable files leave the host as it was.
func (h *Host) Open(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	name := filepath.Base(abs)
	kind, err := Classify(abs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	view := h.factory.NewView(kind)
	view.Resize(h.width, h.height)
	if err := view.Load(abs); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}
	view.Reset()

	if h.watcher != nil {
		if err := h.watcher.Swap(abs); err != nil {
			h.log.WithError(err).WithField("path", abs).Warn("cannot watch file")
		}
	}
	h.view = view
	h.path = abs
	if h.digest, err = digestFile(abs); err != nil {
		h.log.WithError(err).WithField("path", abs).Debug("digest unavailable")
	}
	h.log.WithFields(logrus.Fields{"path": abs, "kind": kind}).Info("opened")
	return nil
}

// Drop opens the first dropped path. An empty drop is ignored.
func (h *Host) Drop(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	return h.Open(paths[0])
}

// Changed handles a change notification for path. It reports whether the
// visual was refreshed. Notifications that leave the bytes unchanged, or
// that catch the file half-written or missing, are ignored so the last good
// image stays on screen.
func (h *Host) Changed(path string) bool {
	if h.view == nil || filepath.Clean(path) != h.path {
		return false
	}
	sum, err := digestFile(h.path)
	if err != nil {
		h.log.WithError(err).WithField("path", h.path).Debug("refresh skipped")
		return false
	}
	if sum == h.digest {
		return false
	}
	if err := h.view.Reload(h.path); err != nil {
		h.log.WithError(err).WithField("path", h.path).Debug("refresh skipped")
		return false
	}
	h.digest = sum
	h.log.WithField("path", h.path).Debug("refreshed")
	return true
}

func (h *Host) Resize(w, ht float64) {
	h.width, h.height = w, ht
	if h.view != nil {
		h.view.Resize(w, ht)
	}
}

func (h *Host) Reset() {
	if h.view != nil {
		h.view.Reset()
	}
}

func (h *Host) Cancel() {
	if h.view != nil {
		h.view.Cancel()
	}
}

func (h *Host) HandleInput(ev platform.Event) bool {
	if h.view == nil {
		return false
	}
	return h.view.HandleInput(ev)
}

func (h *Host) Zoom(factor float64) {
	if h.view != nil {
		h.view.Zoom(factor)
	}
}

func (h *Host) ZoomLevel() float64 {
	if h.view == nil {
		return 1
	}
	return h.view.ZoomLevel()
}

// Close stops watching the current path.
func (h *Host) Close() error {
	if h.watcher == nil {
		return nil
	}
	return h.watcher.Swap("")
}

func digestFile(path string) ([blake2b.Size256]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [blake2b.Size256]byte{}, err
	}
	return blake2b.Sum256(data), nil
}
