package playback

// EventKind classifies input events.
type EventKind int

const (
	// KeyDown is a key press or auto-repeat.
	KeyDown EventKind = iota
	// KeyUp is a key release. Not every input source reports releases.
	KeyUp
	// Redraw asks for the current frame to be rendered again,
	// e.g. after the camera moved or the window was resized.
	Redraw
	// Quit ends playback.
	Quit
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case Redraw:
		return "Redraw"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// AdvanceKey steps to the next frame in key-driven playback.
const AdvanceKey = ' '

// Event is one input event. Key is set for KeyDown and KeyUp.
type Event struct {
	Kind EventKind
	Key  rune
}

// Input delivers events one at a time. The channel is closed when the
// source shuts down.
type Input interface {
	Events() <-chan Event
}

// Renderer displays a frame.
type Renderer interface {
	Render(f *Frame) error
}
