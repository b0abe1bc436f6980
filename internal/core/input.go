package core

// Key is a raw key event as delivered by the key-event source. The platform
// layer filters physical keys down to these values before the simulation
// ever sees them.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // W, K, Up arrow
	KeyDown      // S, J, Down arrow
	KeyLeft      // A, H, Left arrow
	KeyRight     // D, L, Right arrow
	KeyOther     // Any other key; consumed and ignored by the engine
)

// Heading maps a key to the heading it requests.
// Returns false for KeyNone, KeyOther and unknown values.
func (k Key) Heading() (Heading, bool) {
	switch k {
	case KeyUp:
		return HeadingUp, true
	case KeyDown:
		return HeadingDown, true
	case KeyLeft:
		return HeadingLeft, true
	case KeyRight:
		return HeadingRight, true
	}
	return 0, false
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}
