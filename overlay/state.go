package overlay

// State is the pointer interaction state of an overlay.
type State int

const (
	Idle State = iota
	Hovered
	Pressed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Pressed:
		return "pressed"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer notification delivered to the overlay.
type PointerEvent int

const (
	PointerEnter PointerEvent = iota
	PointerLeave
	LeftDown
	LeftUp
)

// Next returns the state after ev and whether it differs from s.
// Leaving while pressed abandons the press.
func Next(s State, ev PointerEvent) (State, bool) {
	next := s
	switch ev {
	case PointerEnter:
		if s == Idle {
			next = Hovered
		}
	case PointerLeave:
		next = Idle
	case LeftDown:
		if s == Hovered {
			next = Pressed
		}
	case LeftUp:
		if s == Pressed {
			next = Hovered
		}
	}
	return next, next != s
}
