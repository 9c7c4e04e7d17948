package viewport

import "math"

const (
	// DetentUnits is the angle delta reported for one wheel notch
	// (15 degrees in eighths of a degree).
	DetentUnits = 120
	// DefaultZoomStep is the relative zoom added per detent.
	DefaultZoomStep = 0.25

	MinScale = 1e-3
	MaxScale = 1e3
)

// Transform maps content coordinates to view coordinates:
// view = content*Scale + Offset.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func Identity() Transform { return Transform{Scale: 1} }

func (t Transform) ToView(p Point) Point {
	return Point{X: p.X*t.Scale + t.OffsetX, Y: p.Y*t.Scale + t.OffsetY}
}

func (t Transform) ToContent(p Point) Point {
	return Point{X: (p.X - t.OffsetX) / t.Scale, Y: (p.Y - t.OffsetY) / t.Scale}
}

// WheelCoefficient converts a raw wheel angle delta into a multiplicative
// zoom coefficient: 1 + detents*step.
func WheelCoefficient(angleDelta, step float64) float64 {
	numDegrees := angleDelta / 8
	numSteps := numDegrees / 15
	return 1 + numSteps*step
}

// Controller owns one view's transform and turns wheel and drag input into
// transform changes. It does no I/O.
type Controller struct {
	t        Transform
	step     float64
	viewport Size

	panning     bool
	panStart    Point
	panStartOff Point
}

func NewController() *Controller {
	return &Controller{t: Identity(), step: DefaultZoomStep}
}

// SetZoomStep overrides the per-detent zoom step. Non-positive values are ignored.
func (c *Controller) SetZoomStep(step float64) {
	if step > 0 {
		c.step = step
	}
}

func (c *Controller) ZoomStep() float64 { return c.step }

func (c *Controller) Transform() Transform { return c.t }

func (c *Controller) SetViewport(w, h float64) {
	c.viewport = Size{W: w, H: h}
}

func (c *Controller) Viewport() Size { return c.viewport }

// ApplyZoom scales by the wheel coefficient for angleDelta, keeping the
// content point under anchor stationary. It reports false when the
// coefficient would not keep the scale positive.
func (c *Controller) ApplyZoom(angleDelta float64, anchor Point) bool {
	return c.Scale(WheelCoefficient(angleDelta, c.step), anchor)
}

// Scale applies a relative scale factor anchored at a view point.
func (c *Controller) Scale(factor float64, anchor Point) bool {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return false
	}
	next := c.t.Scale * factor
	switch {
	case next < MinScale:
		factor = MinScale / c.t.Scale
	case next > MaxScale:
		factor = MaxScale / c.t.Scale
	}
	c.t.Scale *= factor
	c.t.OffsetX = anchor.X - (anchor.X-c.t.OffsetX)*factor
	c.t.OffsetY = anchor.Y - (anchor.Y-c.t.OffsetY)*factor
	return true
}

func (c *Controller) Reset() {
	c.t = Identity()
	c.panning = false
}

func (c *Controller) Panning() bool { return c.panning }

func (c *Controller) BeginPan(start Point) {
	c.panning = true
	c.panStart = start
	c.panStartOff = Point{X: c.t.OffsetX, Y: c.t.OffsetY}
}

func (c *Controller) UpdatePan(current Point) {
	if !c.panning {
		return
	}
	d := current.Sub(c.panStart)
	c.t.OffsetX = c.panStartOff.X + d.X
	c.t.OffsetY = c.panStartOff.Y + d.Y
}

func (c *Controller) EndPan() {
	c.panning = false
}

// FitInView scales and centers the content under a view-space rectangle so
// it fills the viewport while keeping its aspect ratio. Empty rectangles and
// an unknown viewport leave the transform alone.
func (c *Controller) FitInView(r Rect) bool {
	r = r.Canon()
	if r.Empty() || c.viewport.W <= 0 || c.viewport.H <= 0 {
		return false
	}
	lo := c.t.ToContent(r.Min)
	hi := c.t.ToContent(r.Max)
	content := Rect{Min: lo, Max: hi}
	scale := math.Min(c.viewport.W/content.Dx(), c.viewport.H/content.Dy())
	scale = math.Max(MinScale, math.Min(MaxScale, scale))

	center := content.Center()
	c.t.Scale = scale
	c.t.OffsetX = c.viewport.W/2 - center.X*scale
	c.t.OffsetY = c.viewport.H/2 - center.Y*scale
	return true
}
