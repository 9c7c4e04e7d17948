package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWheelCoefficientOneDetent(t *testing.T) {
	assert.Equal(t, 1.25, WheelCoefficient(120, DefaultZoomStep))
	assert.Equal(t, 0.75, WheelCoefficient(-120, DefaultZoomStep))
	assert.Equal(t, 1.0, WheelCoefficient(0, DefaultZoomStep))
}

func TestApplyZoomMultipliesScale(t *testing.T) {
	c := NewController()
	require.True(t, c.ApplyZoom(120, Point{}))
	assert.Equal(t, 1.25, c.Transform().Scale)
}

func TestApplyZoomKeepsAnchorStationary(t *testing.T) {
	c := NewController()
	c.BeginPan(Point{})
	c.UpdatePan(Point{X: 13, Y: -7})
	c.EndPan()

	anchor := Point{X: 200, Y: 150}
	before := c.Transform().ToContent(anchor)
	require.True(t, c.ApplyZoom(240, anchor))
	after := c.Transform().ToContent(anchor)

	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)
}

func TestZoomThenInverseRestoresScale(t *testing.T) {
	c := NewController()
	deltas := []float64{120, 120, -120, 360, 60, -240, 120}
	anchors := []Point{{X: 10, Y: 10}, {X: 300, Y: 40}, {X: 0, Y: 0}, {X: 55, Y: 99}, {X: 640, Y: 480}, {X: 1, Y: 2}, {X: 80, Y: 20}}

	for i, d := range deltas {
		require.True(t, c.ApplyZoom(d, anchors[i]))
	}
	for i := len(deltas) - 1; i >= 0; i-- {
		coef := WheelCoefficient(deltas[i], c.ZoomStep())
		require.True(t, c.Scale(1/coef, anchors[i]))
	}

	got := c.Transform()
	assert.InDelta(t, 1.0, got.Scale, 1e-9)
	assert.InDelta(t, 0.0, got.OffsetX, 1e-9)
	assert.InDelta(t, 0.0, got.OffsetY, 1e-9)
}

func TestApplyZoomRejectsNonPositiveCoefficient(t *testing.T) {
	c := NewController()
	// -480 units is four detents down: 1 + (-4 * 0.25) = 0.
	assert.False(t, c.ApplyZoom(-480, Point{X: 5, Y: 5}))
	assert.False(t, c.ApplyZoom(-960, Point{}))
	assert.Equal(t, Identity(), c.Transform())
}

func TestScaleClampsToRange(t *testing.T) {
	c := NewController()
	for i := 0; i < 200; i++ {
		c.ApplyZoom(120, Point{})
	}
	assert.InDelta(t, MaxScale, c.Transform().Scale, 1e-9)
	for i := 0; i < 400; i++ {
		c.ApplyZoom(-120, Point{})
	}
	assert.InDelta(t, MinScale, c.Transform().Scale, 1e-12)
	assert.Greater(t, c.Transform().Scale, 0.0)
}

func TestResetRestoresIdentity(t *testing.T) {
	c := NewController()
	c.ApplyZoom(360, Point{X: 40, Y: 90})
	c.BeginPan(Point{X: 1, Y: 1})
	c.UpdatePan(Point{X: 50, Y: 80})

	c.Reset()
	assert.Equal(t, Transform{Scale: 1}, c.Transform())
	assert.False(t, c.Panning())
}

func TestPanTracksPointerDelta(t *testing.T) {
	c := NewController()
	c.ApplyZoom(120, Point{})

	c.BeginPan(Point{X: 100, Y: 100})
	c.UpdatePan(Point{X: 130, Y: 90})
	got := c.Transform()
	assert.Equal(t, 30.0, got.OffsetX)
	assert.Equal(t, -10.0, got.OffsetY)

	c.UpdatePan(Point{X: 90, Y: 100})
	got = c.Transform()
	assert.Equal(t, -10.0, got.OffsetX)
	assert.Equal(t, 0.0, got.OffsetY)

	c.EndPan()
	c.UpdatePan(Point{X: 500, Y: 500})
	assert.Equal(t, -10.0, c.Transform().OffsetX)
}

func TestFitInViewCentersSelection(t *testing.T) {
	c := NewController()
	c.SetViewport(400, 200)

	require.True(t, c.FitInView(Rect{Min: Point{X: 10, Y: 10}, Max: Point{X: 110, Y: 60}}))
	got := c.Transform()
	assert.InDelta(t, 4.0, got.Scale, 1e-9)

	center := got.ToView(Point{X: 60, Y: 35})
	assert.InDelta(t, 200, center.X, 1e-9)
	assert.InDelta(t, 100, center.Y, 1e-9)
}

func TestFitInViewUsesLimitingAxis(t *testing.T) {
	c := NewController()
	c.SetViewport(400, 400)

	require.True(t, c.FitInView(RectFromPoints(Point{X: 200, Y: 0}, Point{X: 0, Y: 100})))
	assert.InDelta(t, 2.0, c.Transform().Scale, 1e-9)
}

func TestFitInViewIgnoresEmptyRect(t *testing.T) {
	c := NewController()
	c.SetViewport(400, 400)
	c.ApplyZoom(120, Point{X: 3, Y: 3})
	before := c.Transform()

	assert.False(t, c.FitInView(Rect{Min: Point{X: 5, Y: 5}, Max: Point{X: 5, Y: 90}}))
	assert.Equal(t, before, c.Transform())
}
