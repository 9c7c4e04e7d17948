package scrollproxy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gvview/internal/platform"
	"gvview/internal/viewport"
)

type fakeRenderer struct {
	zoom     float64
	scroll   viewport.Point
	contents viewport.Size
	scrolls  []viewport.Point
	observer []Observer
}

func (f *fakeRenderer) ZoomFactor() float64            { return f.zoom }
func (f *fakeRenderer) SetZoomFactor(z float64)        { f.zoom = z }
func (f *fakeRenderer) ScrollPosition() viewport.Point { return f.scroll }
func (f *fakeRenderer) ContentsSize() viewport.Size    { return f.contents }
func (f *fakeRenderer) AddInputObserver(o Observer)    { f.observer = append(f.observer, o) }
func (f *fakeRenderer) ScrollTo(x, y float64) {
	f.scrolls = append(f.scrolls, viewport.Point{X: x, Y: y})
}

func (f *fakeRenderer) dispatch(ev platform.Event) bool {
	for _, o := range f.observer {
		if o.ObserveInput(ev) {
			return true
		}
	}
	return false
}

func newFixture(zoom float64) (*fakeRenderer, *Adapter, *time.Time) {
	now := time.Unix(1000, 0)
	clock := viewport.NewReleaseClock(viewport.DefaultDoubleClick)
	clock.Now = func() time.Time { return now }
	r := &fakeRenderer{zoom: zoom, scroll: viewport.Point{X: 400, Y: 400}, contents: viewport.Size{W: 2000, H: 1500}}
	a := New(r, clock)
	a.Install(r)
	return r, a, &now
}

func press(x, y float64) platform.Event {
	return platform.Event{Type: platform.EventMouseDown, X: x, Y: y, Button: platform.ButtonLeft, Buttons: platform.ButtonLeft}
}

func move(x, y float64) platform.Event {
	return platform.Event{Type: platform.EventMouseMove, X: x, Y: y, Buttons: platform.ButtonLeft}
}

func TestWheelMultipliesZoomFactor(t *testing.T) {
	r, _, _ := newFixture(2)
	consumed := r.dispatch(platform.Event{Type: platform.EventMouseWheel, WheelY: 120})
	assert.True(t, consumed)
	assert.Equal(t, 2.5, r.zoom)

	r.dispatch(platform.Event{Type: platform.EventMouseWheel, WheelY: -480})
	assert.Equal(t, 2.5, r.zoom, "non-positive coefficient must be ignored")
}

func TestDragScrollCompensatesZoom(t *testing.T) {
	for _, zoom := range []float64{0.5, 1, 2, 4} {
		r, _, _ := newFixture(zoom)
		require.False(t, r.dispatch(press(100, 100)))
		require.False(t, r.dispatch(move(130, 80)))
		require.Len(t, r.scrolls, 1)

		// pointer moved right 30 and up 20: scroll decreases x, increases y.
		got := r.scrolls[0]
		assert.InDelta(t, (400-30)/zoom, got.X, 1e-9)
		assert.InDelta(t, (400+20)/zoom, got.Y, 1e-9)

		start := viewport.Point{X: 400 / zoom, Y: 400 / zoom}
		assert.InDelta(t, 30/zoom, start.X-got.X, 1e-9)
		assert.InDelta(t, 20/zoom, got.Y-start.Y, 1e-9)
	}
}

func TestDragClampsToContents(t *testing.T) {
	r, _, _ := newFixture(2)
	r.dispatch(press(0, 0))
	r.dispatch(move(1000, -5000))
	require.Len(t, r.scrolls, 1)
	// target (-600, 5400) clamps to (0, 1500) before dividing by zoom 2.
	assert.Equal(t, viewport.Point{X: 0, Y: 750}, r.scrolls[0])
}

func TestMoveIgnoredWithoutLeftButtonOrWithCtrl(t *testing.T) {
	r, _, _ := newFixture(1)
	r.dispatch(press(0, 0))

	r.dispatch(platform.Event{Type: platform.EventMouseMove, X: 10, Y: 10, Buttons: platform.ButtonRight})
	r.dispatch(platform.Event{Type: platform.EventMouseMove, X: 10, Y: 10, Buttons: platform.ButtonLeft | platform.ButtonRight})
	r.dispatch(platform.Event{Type: platform.EventMouseMove, X: 10, Y: 10, Buttons: platform.ButtonLeft, Modifiers: platform.ModCtrl})
	assert.Empty(t, r.scrolls)

	r.dispatch(platform.Event{Type: platform.EventMouseMove, X: 10, Y: 10, Buttons: platform.ButtonLeft, Modifiers: platform.ModShift})
	assert.Len(t, r.scrolls, 1)
}

func TestFastDoubleRightReleaseResetsZoom(t *testing.T) {
	r, _, now := newFixture(3)
	up := platform.Event{Type: platform.EventMouseUp, Button: platform.ButtonRight}

	assert.False(t, r.dispatch(up))
	assert.Equal(t, 3.0, r.zoom)

	*now = now.Add(150 * time.Millisecond)
	assert.True(t, r.dispatch(up))
	assert.Equal(t, 1.0, r.zoom)
	assert.Empty(t, r.scrolls, "double click must not touch the scroll position")
}
