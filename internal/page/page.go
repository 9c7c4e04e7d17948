// Package page renders an svg document the way an embedded browser would:
// a zoom factor, a scroll position and an input layer that observers can
// tap before the page handles input itself.
package page

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"

	"gvview/internal/decode"
	"gvview/internal/platform"
	"gvview/internal/scrollproxy"
	"gvview/internal/viewport"
)

const (
	MinZoom = 0.25
	MaxZoom = 5.0
)

var ErrNoDocument = errors.New("page: no document loaded")

type Page struct {
	path   string
	icon   *oksvg.SvgIcon
	zoom   float64
	view   viewport.Size
	scroll viewport.Point

	observers []scrollproxy.Observer

	frame *image.RGBA
	gen   uint64
	dirty bool
}

func New() *Page {
	return &Page{zoom: 1, dirty: true}
}

func (p *Page) Path() string { return p.path }

// Load replaces the document. On failure the current document stays.
func (p *Page) Load(path string) error {
	icon, err := readIcon(path)
	if err != nil {
		return err
	}
	p.path = path
	p.icon = icon
	p.zoom = 1
	p.scroll = viewport.Point{}
	p.invalidate()
	return nil
}

// Reload re-reads the current file, keeping zoom and scroll. A missing or
// unparsable file leaves the page as it was.
func (p *Page) Reload() error {
	if p.path == "" {
		return ErrNoDocument
	}
	if fi, err := os.Stat(p.path); err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("reload %s: %w", filepath.Base(p.path), os.ErrNotExist)
	}
	icon, err := readIcon(p.path)
	if err != nil {
		return err
	}
	p.icon = icon
	p.clampScroll()
	p.invalidate()
	return nil
}

func readIcon(path string) (*oksvg.SvgIcon, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return decode.ParseSVG(data)
}

func (p *Page) ZoomFactor() float64 { return p.zoom }

// SetZoomFactor keeps the top-left page point in place, like a browser.
func (p *Page) SetZoomFactor(z float64) {
	if math.IsNaN(z) || z <= 0 {
		return
	}
	z = math.Max(MinZoom, math.Min(MaxZoom, z))
	if z == p.zoom {
		return
	}
	ratio := z / p.zoom
	p.scroll = viewport.Point{X: p.scroll.X * ratio, Y: p.scroll.Y * ratio}
	p.zoom = z
	p.clampScroll()
	p.invalidate()
}

func (p *Page) ScrollPosition() viewport.Point { return p.scroll }

// ScrollTo takes page units; the stored position is in zoomed pixels.
func (p *Page) ScrollTo(x, y float64) {
	p.scroll = viewport.Point{X: x * p.zoom, Y: y * p.zoom}
	p.clampScroll()
	p.invalidate()
}

func (p *Page) ContentsSize() viewport.Size {
	if p.icon == nil {
		return viewport.Size{}
	}
	w, h := decode.IntrinsicSize(p.icon)
	return viewport.Size{W: w * p.zoom, H: h * p.zoom}
}

func (p *Page) SetViewportSize(w, h float64) {
	if p.view.W == w && p.view.H == h {
		return
	}
	p.view = viewport.Size{W: w, H: h}
	p.clampScroll()
	p.invalidate()
}

func (p *Page) clampScroll() {
	c := p.ContentsSize()
	maxX := math.Max(0, c.W-p.view.W)
	maxY := math.Max(0, c.H-p.view.H)
	p.scroll.X = math.Max(0, math.Min(maxX, p.scroll.X))
	p.scroll.Y = math.Max(0, math.Min(maxY, p.scroll.Y))
}

func (p *Page) AddInputObserver(o scrollproxy.Observer) {
	p.observers = append(p.observers, o)
}

// Dispatch runs the observers in registration order; the first one that
// consumes the event stops it. The page has no native gestures of its own.
func (p *Page) Dispatch(ev platform.Event) bool {
	for _, o := range p.observers {
		if o.ObserveInput(ev) {
			return true
		}
	}
	return false
}

func (p *Page) invalidate() { p.dirty = true }

// Frame returns the visible window rendered at the current zoom and a
// generation number that changes whenever the pixels do.
func (p *Page) Frame() (*image.RGBA, uint64) {
	if !p.dirty && p.frame != nil {
		return p.frame, p.gen
	}
	w, h := int(p.view.W), int(p.view.H)
	if w <= 0 || h <= 0 {
		return nil, p.gen
	}
	if p.frame == nil || p.frame.Bounds().Dx() != w || p.frame.Bounds().Dy() != h {
		p.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	decode.Blank(p.frame)
	if p.icon != nil {
		c := p.ContentsSize()
		decode.RenderSVG(p.icon, p.frame, -p.scroll.X, -p.scroll.Y, c.W, c.H)
	}
	p.dirty = false
	p.gen++
	return p.frame, p.gen
}
