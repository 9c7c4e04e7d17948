// Package scrollproxy makes a renderer that only exposes a zoom factor and a
// scroll position behave like the pannable image view.
package scrollproxy

import (
	"math"

	"gvview/internal/platform"
	"gvview/internal/viewport"
)

// Renderer is the surface driven by the adapter. ScrollPosition and
// ContentsSize are in zoomed pixels; ScrollTo takes page units, which scale
// with the zoom factor.
type Renderer interface {
	ZoomFactor() float64
	SetZoomFactor(z float64)
	ScrollPosition() viewport.Point
	ScrollTo(x, y float64)
	ContentsSize() viewport.Size
}

// Observer sees input before the renderer's own content layer does.
// Returning true consumes the event.
type Observer interface {
	ObserveInput(ev platform.Event) bool
}

// InputLayer is the renderer's inner content layer that accepts observers.
type InputLayer interface {
	AddInputObserver(o Observer)
}

type Adapter struct {
	r     Renderer
	step  float64
	clock *viewport.ReleaseClock

	startPointer viewport.Point
	startScroll  viewport.Point
}

func New(r Renderer, clock *viewport.ReleaseClock) *Adapter {
	if clock == nil {
		clock = viewport.NewReleaseClock(viewport.DefaultDoubleClick)
	}
	return &Adapter{r: r, step: viewport.DefaultZoomStep, clock: clock}
}

// Install registers the adapter on the layer that receives raw input.
func (a *Adapter) Install(layer InputLayer) {
	layer.AddInputObserver(a)
}

func (a *Adapter) SetZoomStep(step float64) {
	if step > 0 {
		a.step = step
	}
}

func (a *Adapter) ObserveInput(ev platform.Event) bool {
	switch ev.Type {
	case platform.EventMouseWheel:
		a.zoom(ev.WheelY)
		return true
	case platform.EventMouseDown:
		a.startPointer = viewport.Point{X: ev.X, Y: ev.Y}
		a.startScroll = a.r.ScrollPosition()
		return false
	case platform.EventMouseMove:
		if ev.Buttons != platform.ButtonLeft || ev.Modifiers == platform.ModCtrl {
			return false
		}
		a.drag(viewport.Point{X: ev.X, Y: ev.Y})
		return false
	case platform.EventMouseUp:
		if ev.Button != platform.ButtonRight {
			return false
		}
		if a.clock.Fast() {
			a.r.SetZoomFactor(1)
			return true
		}
	}
	return false
}

func (a *Adapter) zoom(angleDelta float64) {
	coef := viewport.WheelCoefficient(angleDelta, a.step)
	if coef <= 0 {
		return
	}
	a.r.SetZoomFactor(a.r.ZoomFactor() * coef)
}

// drag scrolls opposite to the pointer so the content follows it. The
// clamped target is in zoomed pixels and ScrollTo takes page units, hence
// the division by the zoom factor.
func (a *Adapter) drag(current viewport.Point) {
	delta := current.Sub(a.startPointer)
	target := a.startScroll.Sub(delta)

	contents := a.r.ContentsSize()
	x := clamp(target.X, 0, contents.W)
	y := clamp(target.Y, 0, contents.H)

	zoom := a.r.ZoomFactor()
	if zoom <= 0 {
		zoom = 1
	}
	a.r.ScrollTo(x/zoom, y/zoom)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
