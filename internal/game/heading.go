// Package game implements the snake state machine: tick-driven movement,
// growth, collision detection, food placement and the win/loss transitions.
// It knows nothing about terminals, key codes or drawing; the platform layer
// feeds it actions and consumes snapshots.
package game

// Cell is a single grid position. Cells are value types compared by equality.
type Cell struct {
	X, Y int
}

// Heading is the snake's single active direction of motion.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Delta returns the unit step one move in this heading takes.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// MotionController converts direction intents into a validated heading.
// A request for the exact opposite of the current heading is silently
// ignored, so the snake can never reverse into itself within one move.
type MotionController struct {
	heading Heading
}

// NewMotionController creates a controller with the given initial heading.
func NewMotionController(initial Heading) MotionController {
	return MotionController{heading: initial}
}

// Set applies a requested heading. Reversal requests are a no-op; any other
// request, including the current heading itself, replaces the stored value.
func (m *MotionController) Set(requested Heading) {
	if requested == m.heading.Opposite() {
		return
	}
	m.heading = requested
}

// Heading returns the active heading.
func (m MotionController) Heading() Heading {
	return m.heading
}
