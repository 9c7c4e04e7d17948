package desktop

import (
	"testing"

	"gvview/internal/platform"
)

func types(evs []platform.Event) []platform.EventType {
	out := make([]platform.EventType, len(evs))
	for i, e := range evs {
		out[i] = e.Type
	}
	return out
}

func TestFirstSnapshotOnlyPrimesPointer(t *testing.T) {
	b := New()
	evs := b.Events(Snapshot{X: 10, Y: 10})
	if len(evs) != 0 {
		t.Fatalf("expected no events, got %v", types(evs))
	}
}

func TestDragSequence(t *testing.T) {
	b := New()
	b.Events(Snapshot{X: 0, Y: 0})

	evs := b.Events(Snapshot{X: 5, Y: 5, Held: platform.ButtonLeft, Pressed: platform.ButtonLeft})
	if len(evs) != 2 || evs[0].Type != platform.EventMouseMove || evs[1].Type != platform.EventMouseDown {
		t.Fatalf("unexpected events: %v", types(evs))
	}
	if evs[1].Button != platform.ButtonLeft || evs[1].Buttons != platform.ButtonLeft {
		t.Fatalf("unexpected press: %+v", evs[1])
	}

	evs = b.Events(Snapshot{X: 9, Y: 5, Held: platform.ButtonLeft})
	if len(evs) != 1 || evs[0].Buttons != platform.ButtonLeft || evs[0].X != 9 {
		t.Fatalf("unexpected move: %+v", evs)
	}

	evs = b.Events(Snapshot{X: 9, Y: 5, Released: platform.ButtonLeft})
	if len(evs) != 1 || evs[0].Type != platform.EventMouseUp || evs[0].Buttons != platform.ButtonNone {
		t.Fatalf("unexpected release: %+v", evs)
	}
}

func TestWheelAndKeys(t *testing.T) {
	b := New()
	b.Events(Snapshot{})
	evs := b.Events(Snapshot{WheelY: 120, Mods: platform.ModCtrl, Keys: []string{"T"}})
	if len(evs) != 2 {
		t.Fatalf("unexpected events: %v", types(evs))
	}
	if evs[0].Type != platform.EventMouseWheel || evs[0].WheelY != 120 {
		t.Fatalf("unexpected wheel: %+v", evs[0])
	}
	if evs[1].Key != "T" || evs[1].Modifiers != platform.ModCtrl {
		t.Fatalf("unexpected key: %+v", evs[1])
	}
}

func TestResizeReportedOnce(t *testing.T) {
	b := New()
	evs := b.Events(Snapshot{Width: 640, Height: 480})
	if len(evs) != 1 || evs[0].Type != platform.EventResize || evs[0].Width != 640 {
		t.Fatalf("unexpected events: %+v", evs)
	}
	if evs := b.Events(Snapshot{Width: 640, Height: 480}); len(evs) != 0 {
		t.Fatalf("resize repeated: %v", types(evs))
	}
}

func TestMoveInReleasePollKeepsReleasedButton(t *testing.T) {
	b := New()
	b.Events(Snapshot{})
	b.Events(Snapshot{Held: platform.ButtonRight, Pressed: platform.ButtonRight})

	evs := b.Events(Snapshot{X: 20, Y: 10, Released: platform.ButtonRight})
	if len(evs) != 2 || evs[0].Type != platform.EventMouseMove || evs[1].Type != platform.EventMouseUp {
		t.Fatalf("unexpected events: %v", types(evs))
	}
	if evs[0].Buttons != platform.ButtonRight {
		t.Fatalf("move must still report the right button: %+v", evs[0])
	}
	if evs[1].Buttons != platform.ButtonNone {
		t.Fatalf("release must clear it: %+v", evs[1])
	}
}

func TestCloseRequestComesLast(t *testing.T) {
	b := New()
	b.Events(Snapshot{})
	evs := b.Events(Snapshot{Keys: []string{"W"}, Closing: true})
	if len(evs) != 2 || evs[1].Type != platform.EventClose {
		t.Fatalf("unexpected events: %v", types(evs))
	}
	if b.Name() != "ebiten" {
		t.Fatalf("unexpected backend name %q", b.Name())
	}
}
