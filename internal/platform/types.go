package platform

// WindowConfig is the window a desktop backend opens. Sizes are in
// device-independent pixels.
type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventResize:
		return "resize"
	case EventKeyDown:
		return "key-down"
	case EventMouseMove:
		return "mouse-move"
	case EventMouseDown:
		return "mouse-down"
	case EventMouseUp:
		return "mouse-up"
	case EventMouseWheel:
		return "mouse-wheel"
	default:
		return "unknown"
	}
}

type Button uint8

const (
	ButtonNone   Button = 0
	ButtonLeft   Button = 1 << 0
	ButtonRight  Button = 1 << 1
	ButtonMiddle Button = 1 << 2
)

type Modifier uint8

const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << 0
	ModShift Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
)

// Event is one input occurrence in view-local coordinates. Button is the
// button that changed state on press/release; Buttons is the set held after
// the event; a move reported in the same poll as a release still includes
// the released button. WheelY is an angle delta where one notch is 120 units.
type Event struct {
	Type      EventType
	Width     int
	Height    int
	X         float64
	Y         float64
	Button    Button
	Buttons   Button
	Modifiers Modifier
	WheelY    float64
	Key       string
}

// Translate returns the event with its pointer position shifted by (-dx, -dy).
func (e Event) Translate(dx, dy float64) Event {
	e.X -= dx
	e.Y -= dy
	return e
}

// Source produces the input events observed since the previous poll.
type Source interface {
	Name() string
	PollEvents() []Event
}
