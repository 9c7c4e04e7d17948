package viewport

import (
	"time"

	"gvview/internal/platform"
)

// DefaultDoubleClick is the largest gap between two right-button releases
// that still counts as a fast double click.
const DefaultDoubleClick = 300 * time.Millisecond

// ReleaseClock remembers the instant of the last release on one view and
// classifies the next release as fast (part of a double click) or not.
type ReleaseClock struct {
	Threshold time.Duration
	Now       func() time.Time

	last *time.Time
}

func NewReleaseClock(threshold time.Duration) *ReleaseClock {
	if threshold <= 0 {
		threshold = DefaultDoubleClick
	}
	return &ReleaseClock{Threshold: threshold, Now: time.Now}
}

// Fast reports whether this release follows the previous one within the
// threshold. The stored instant is always overwritten.
func (c *ReleaseClock) Fast() bool {
	now := c.Now()
	fast := c.last != nil && now.Sub(*c.last) < c.Threshold
	c.last = &now
	return fast
}

type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModeSelecting
)

func (m Mode) String() string {
	switch m {
	case ModePanning:
		return "panning"
	case ModeSelecting:
		return "selecting"
	default:
		return "idle"
	}
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeReset
	OutcomeZoomed
)

// Policy decides what a drag means for a view: left drags pan, right drags
// draw a rubber band that zooms on release, and a fast second right release
// resets the view.
type Policy struct {
	ctrl  *Controller
	clock *ReleaseClock

	mode      Mode
	selStart  Point
	selEnd    Point
	selActive bool
}

func NewPolicy(ctrl *Controller, clock *ReleaseClock) *Policy {
	if clock == nil {
		clock = NewReleaseClock(DefaultDoubleClick)
	}
	return &Policy{ctrl: ctrl, clock: clock}
}

func (p *Policy) Mode() Mode { return p.mode }

// Selection returns the rubber band in view coordinates while selecting.
func (p *Policy) Selection() (Rect, bool) {
	if !p.selActive {
		return Rect{}, false
	}
	return RectFromPoints(p.selStart, p.selEnd), true
}

func (p *Policy) Press(b platform.Button, at Point) {
	if p.mode != ModeIdle {
		return
	}
	switch b {
	case platform.ButtonLeft:
		p.mode = ModePanning
		p.ctrl.BeginPan(at)
	case platform.ButtonRight:
		p.mode = ModeSelecting
		p.selStart, p.selEnd = at, at
		p.selActive = true
	}
}

func (p *Policy) Move(at Point) {
	switch p.mode {
	case ModePanning:
		p.ctrl.UpdatePan(at)
	case ModeSelecting:
		p.selEnd = at
	}
}

func (p *Policy) Release(b platform.Button, at Point) Outcome {
	switch {
	case b == platform.ButtonLeft && p.mode == ModePanning:
		p.ctrl.UpdatePan(at)
		p.ctrl.EndPan()
		p.mode = ModeIdle
		return OutcomeNone
	case b != platform.ButtonRight:
		return OutcomeNone
	}

	// Every right release moves the clock, even one that cannot act.
	fast := p.clock.Fast()
	if p.mode == ModePanning {
		return OutcomeNone
	}
	if p.mode == ModeSelecting {
		p.selEnd = at
	}
	p.mode = ModeIdle
	sel, ok := p.Selection()
	p.clearSelection()

	if fast {
		p.ctrl.Reset()
		return OutcomeReset
	}
	if ok && p.ctrl.FitInView(sel) {
		return OutcomeZoomed
	}
	return OutcomeNone
}

// Cancel drops any gesture in progress, e.g. when the view is replaced.
func (p *Policy) Cancel() {
	if p.mode == ModePanning {
		p.ctrl.EndPan()
	}
	p.mode = ModeIdle
	p.clearSelection()
}

func (p *Policy) clearSelection() {
	p.selActive = false
	p.selStart, p.selEnd = Point{}, Point{}
}
