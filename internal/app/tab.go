package app

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"gvview/internal/document"
	"gvview/internal/watch"
	"gvview/internal/workspace"
)

// tabDoc is the workspace document behind one tab: a host, the watcher that
// follows its file and the GPU copy of whatever it currently shows.
type tabDoc struct {
	host    *document.Host
	watcher *watch.Watcher

	tex      *ebiten.Image
	texOwner any
	texGen   uint64

	width  int
	height int
}

func newTabDoc(factory document.ViewFactory, log *logrus.Entry) *tabDoc {
	w, err := watch.New(log)
	if err != nil {
		log.WithError(err).Warn("file watching disabled for tab")
	}
	var pw document.PathWatcher
	if w != nil {
		pw = w
	}
	return &tabDoc{host: document.NewHost(factory, pw, log), watcher: w}
}

func (d *tabDoc) Title() string { return d.host.Title() }
func (d *tabDoc) Loaded() bool  { return d.host.Loaded() }

func (d *tabDoc) Close() error {
	err := d.host.Close()
	if d.watcher != nil {
		err = errors.Join(err, d.watcher.Close())
	}
	d.releaseTexture()
	return err
}

// resize forwards the content area size when it changed.
func (d *tabDoc) resize(w, h int) {
	if w == d.width && h == d.height {
		return
	}
	d.width, d.height = w, h
	d.host.Resize(float64(w), float64(h))
}

// refresh applies pending file notifications and reports how many of them
// replaced the visual.
func (d *tabDoc) refresh() int {
	if d.watcher == nil {
		return 0
	}
	n := 0
	for _, c := range d.watcher.Drain() {
		if d.host.Changed(c.Path) {
			n++
		}
	}
	return n
}

// texture returns src uploaded to the GPU. owner and gen identify the
// pixels; the upload is skipped while both are unchanged.
func (d *tabDoc) texture(src image.Image, owner any, gen uint64) *ebiten.Image {
	if d.tex != nil && d.texOwner == owner && d.texGen == gen {
		return d.tex
	}
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if ok && d.tex != nil && d.tex.Bounds().Dx() == b.Dx() && d.tex.Bounds().Dy() == b.Dy() && rgba.Stride == 4*b.Dx() {
		d.tex.WritePixels(rgba.Pix)
	} else {
		d.releaseTexture()
		d.tex = ebiten.NewImageFromImage(src)
	}
	d.texOwner, d.texGen = owner, gen
	return d.tex
}

func (d *tabDoc) releaseTexture() {
	if d.tex != nil {
		d.tex.Deallocate()
		d.tex = nil
	}
	d.texOwner = nil
}

func docOf(t *workspace.Tab) *tabDoc {
	if t == nil {
		return nil
	}
	d, _ := t.Doc.(*tabDoc)
	return d
}
