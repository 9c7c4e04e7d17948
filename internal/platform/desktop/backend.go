// Package desktop turns ebiten's polled input state into platform events.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gvview/internal/platform"
)

// wheelUnits converts ebiten wheel offsets (one unit per notch) into the
// angle delta convention of 120 units per notch.
const wheelUnits = 120

// Snapshot is the input state of one frame.
type Snapshot struct {
	X        float64
	Y        float64
	Held     platform.Button
	Pressed  platform.Button
	Released platform.Button
	WheelY   float64
	Mods     platform.Modifier
	Keys     []string
	Width    int
	Height   int

	// Closing is set while the user asks the window to close.
	Closing bool
}

type Backend struct {
	lastX, lastY float64
	primed       bool
	lastW, lastH int
	keys         []ebiten.Key
}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "ebiten" }

// PollEvents reads the current ebiten input state. Call once per Update.
func (b *Backend) PollEvents() []platform.Event {
	return b.Events(b.snapshot())
}

func (b *Backend) snapshot() Snapshot {
	cx, cy := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	s := Snapshot{X: float64(cx), Y: float64(cy), WheelY: wy * wheelUnits}

	for _, m := range []struct {
		eb  ebiten.MouseButton
		btn platform.Button
	}{
		{ebiten.MouseButtonLeft, platform.ButtonLeft},
		{ebiten.MouseButtonRight, platform.ButtonRight},
		{ebiten.MouseButtonMiddle, platform.ButtonMiddle},
	} {
		if ebiten.IsMouseButtonPressed(m.eb) {
			s.Held |= m.btn
		}
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			s.Pressed |= m.btn
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			s.Released |= m.btn
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		s.Mods |= platform.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		s.Mods |= platform.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		s.Mods |= platform.ModAlt
	}
	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		s.Keys = append(s.Keys, k.String())
	}
	s.Width, s.Height = ebiten.WindowSize()
	s.Closing = ebiten.IsWindowBeingClosed()
	return s
}

// Events converts one snapshot into events, in the order a windowing system
// would deliver them: resize, pointer motion, presses, releases, wheel, keys
// and finally a close request.
func (b *Backend) Events(s Snapshot) []platform.Event {
	var out []platform.Event
	base := platform.Event{X: s.X, Y: s.Y, Buttons: s.Held, Modifiers: s.Mods}

	if s.Width != b.lastW || s.Height != b.lastH {
		b.lastW, b.lastH = s.Width, s.Height
		ev := base
		ev.Type, ev.Width, ev.Height = platform.EventResize, s.Width, s.Height
		out = append(out, ev)
	}
	if !b.primed || s.X != b.lastX || s.Y != b.lastY {
		if b.primed {
			ev := base
			ev.Type = platform.EventMouseMove
			// the pointer moved before this poll's releases happened.
			ev.Buttons |= s.Released
			out = append(out, ev)
		}
		b.primed = true
		b.lastX, b.lastY = s.X, s.Y
	}
	for _, btn := range []platform.Button{platform.ButtonLeft, platform.ButtonRight, platform.ButtonMiddle} {
		if s.Pressed&btn != 0 {
			ev := base
			ev.Type, ev.Button = platform.EventMouseDown, btn
			ev.Buttons |= btn
			out = append(out, ev)
		}
	}
	for _, btn := range []platform.Button{platform.ButtonLeft, platform.ButtonRight, platform.ButtonMiddle} {
		if s.Released&btn != 0 {
			ev := base
			ev.Type, ev.Button = platform.EventMouseUp, btn
			ev.Buttons &^= btn
			out = append(out, ev)
		}
	}
	if s.WheelY != 0 {
		ev := base
		ev.Type, ev.WheelY = platform.EventMouseWheel, s.WheelY
		out = append(out, ev)
	}
	for _, k := range s.Keys {
		ev := base
		ev.Type, ev.Key = platform.EventKeyDown, k
		out = append(out, ev)
	}
	if s.Closing {
		ev := base
		ev.Type = platform.EventClose
		out = append(out, ev)
	}
	return out
}
