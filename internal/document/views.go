package document

import (
	"image"
	"time"

	"gvview/internal/page"
	"gvview/internal/platform"
	"gvview/internal/scrollproxy"
	"gvview/internal/viewport"
)

// Decoder produces pixels for a file. Decode failures, including empty
// results, are reported as errors.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

type VectorMode string

const (
	// VectorPage shows svg files in the page renderer.
	VectorPage VectorMode = "page"
	// VectorRaster rasterizes svg files once and shows them like any image.
	VectorRaster VectorMode = "raster"
)

type Options struct {
	ZoomStep    float64
	DoubleClick time.Duration
	// Now overrides the clock used for double click detection.
	Now func() time.Time
}

func (o Options) clock() *viewport.ReleaseClock {
	c := viewport.NewReleaseClock(o.DoubleClick)
	if o.Now != nil {
		c.Now = o.Now
	}
	return c
}

type Factory struct {
	Decoder    Decoder
	VectorMode VectorMode
	Options    Options
}

func (f Factory) NewView(kind Kind) View {
	if kind == KindVector && f.VectorMode != VectorRaster {
		return NewPageView(f.Options)
	}
	return NewImageView(f.Decoder, kind, f.Options)
}

// ImageView shows a bitmap under a pan/zoom transform.
type ImageView struct {
	kind    Kind
	decoder Decoder
	ctrl    *viewport.Controller
	policy  *viewport.Policy

	img    image.Image
	gen    uint64
	extent viewport.Size
}

func NewImageView(dec Decoder, kind Kind, opts Options) *ImageView {
	ctrl := viewport.NewController()
	ctrl.SetZoomStep(opts.ZoomStep)
	return &ImageView{
		kind:    kind,
		decoder: dec,
		ctrl:    ctrl,
		policy:  viewport.NewPolicy(ctrl, opts.clock()),
	}
}

func (v *ImageView) Kind() Kind { return v.kind }

func (v *ImageView) Load(path string) error {
	img, err := v.decode(path)
	if err != nil {
		return err
	}
	v.setVisual(img)
	return nil
}

func (v *ImageView) Reload(path string) error { return v.Load(path) }

func (v *ImageView) decode(path string) (image.Image, error) {
	img, err := v.decoder.Decode(path)
	if err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrDecode
	}
	return img, nil
}

// setVisual swaps in the new bitmap and sizes the scrollable extent to it.
func (v *ImageView) setVisual(img image.Image) {
	v.img = img
	v.gen++
	b := img.Bounds()
	v.extent = viewport.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

func (v *ImageView) Reset() {
	v.policy.Cancel()
	v.ctrl.Reset()
}

func (v *ImageView) Resize(w, h float64) { v.ctrl.SetViewport(w, h) }

func (v *ImageView) Cancel() { v.policy.Cancel() }

func (v *ImageView) HandleInput(ev platform.Event) bool {
	at := viewport.Point{X: ev.X, Y: ev.Y}
	switch ev.Type {
	case platform.EventMouseDown:
		v.policy.Press(ev.Button, at)
	case platform.EventMouseMove:
		// The release for the gesture was lost; the buttons say it is over.
		switch mode := v.policy.Mode(); {
		case mode == viewport.ModePanning && ev.Buttons&platform.ButtonLeft == 0,
			mode == viewport.ModeSelecting && ev.Buttons&platform.ButtonRight == 0:
			v.policy.Cancel()
		default:
			v.policy.Move(at)
		}
	case platform.EventMouseUp:
		v.policy.Release(ev.Button, at)
	case platform.EventMouseWheel:
		v.ctrl.ApplyZoom(ev.WheelY, at)
	default:
		return false
	}
	return true
}

func (v *ImageView) Zoom(factor float64) {
	vp := v.ctrl.Viewport()
	v.ctrl.Scale(factor, viewport.Point{X: vp.W / 2, Y: vp.H / 2})
}

func (v *ImageView) ZoomLevel() float64    { return v.ctrl.Transform().Scale }
func (v *ImageView) Snapshot() image.Image { return v.img }

// Image returns the current bitmap and a generation that changes with it.
func (v *ImageView) Image() (image.Image, uint64) { return v.img, v.gen }

func (v *ImageView) Extent() viewport.Size            { return v.extent }
func (v *ImageView) Transform() viewport.Transform    { return v.ctrl.Transform() }
func (v *ImageView) Controller() *viewport.Controller { return v.ctrl }
func (v *ImageView) Selection() (viewport.Rect, bool) { return v.policy.Selection() }

// PageView shows an svg in the page renderer driven by the scroll proxy.
type PageView struct {
	page    *page.Page
	adapter *scrollproxy.Adapter
}

func NewPageView(opts Options) *PageView {
	p := page.New()
	a := scrollproxy.New(p, opts.clock())
	a.SetZoomStep(opts.ZoomStep)
	a.Install(p)
	return &PageView{page: p, adapter: a}
}

func (v *PageView) Kind() Kind { return KindVector }

func (v *PageView) Load(path string) error   { return v.page.Load(path) }
func (v *PageView) Reload(path string) error { return v.page.Reload() }

func (v *PageView) Reset() {
	v.page.SetZoomFactor(1)
	v.page.ScrollTo(0, 0)
}

// Cancel has nothing to drop: the scroll proxy only drags while the left
// button is reported held.
func (v *PageView) Cancel() {}

func (v *PageView) Resize(w, h float64) { v.page.SetViewportSize(w, h) }

func (v *PageView) HandleInput(ev platform.Event) bool { return v.page.Dispatch(ev) }

func (v *PageView) Zoom(factor float64) { v.page.SetZoomFactor(v.page.ZoomFactor() * factor) }

func (v *PageView) ZoomLevel() float64 { return v.page.ZoomFactor() }

func (v *PageView) Snapshot() image.Image {
	frame, _ := v.page.Frame()
	if frame == nil {
		return nil
	}
	return frame
}

func (v *PageView) Page() *page.Page { return v.page }
