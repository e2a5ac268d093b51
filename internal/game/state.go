package game

import (
	"fmt"

	"github.com/ametel/snaketerm/internal/core"
)

// Phase is the terminal/non-terminal status of a game session.
// Won and Lost are terminal: once reached, the phase never reverts.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is the snake game state machine. It owns the grid dimensions, the
// snake body, the heading, the food cell and the score, and advances exactly
// one discrete step per Tick call. It is not safe for concurrent use; Loop
// owns it for the lifetime of a session.
type State struct {
	width  int
	height int

	body       []Cell // head at index 0
	motion     MotionController
	food       Cell
	score      int
	desiredLen int
	phase      Phase
	tick       uint64

	placer FoodPlacer
}

// NewState creates a running session with the head at the grid center, the
// body trailing opposite the initial Up heading, and food already placed.
func NewState(cfg Config, placer FoodPlacer) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &State{
		width:      cfg.Width,
		height:     cfg.Height,
		motion:     NewMotionController(HeadingUp),
		desiredLen: cfg.InitialLength,
		placer:     placer,
	}

	cx, cy := core.NewRect(0, 0, cfg.Width, cfg.Height).Center()
	s.body = make([]Cell, cfg.InitialLength)
	for i := range s.body {
		s.body[i] = Cell{X: cx, Y: cy + i}
	}

	food, err := placer.Place(s.body, s.width, s.height)
	if err != nil {
		return nil, err
	}
	s.food = food

	return s, nil
}

// SetHeading forwards a direction intent to the motion controller.
// Reversal requests are silently dropped.
func (s *State) SetHeading(h Heading) {
	s.motion.Set(h)
}

// Tick advances the simulation by exactly one step: collision check, move,
// food check, trim. Calling Tick on a Won or Lost state is a programming
// error and panics.
func (s *State) Tick() {
	if s.phase != PhaseRunning {
		panic(fmt.Sprintf("game: Tick on %s state", s.phase))
	}
	s.tick++

	dx, dy := s.motion.Heading().Delta()
	head := s.body[0]
	next := Cell{X: head.X + dx, Y: head.Y + dy}

	// Wall collision ends the game; the board has no wrap-around.
	if !core.NewRect(0, 0, s.width, s.height).Contains(next.X, next.Y) {
		s.phase = PhaseLost
		return
	}

	// Self collision. The tail cell is vacated this step unless the move
	// grows the snake, so it only blocks the head when growing.
	growing := next == s.food
	blocked := len(s.body)
	if !growing {
		blocked--
	}
	for i := 0; i < blocked; i++ {
		if s.body[i] == next {
			s.phase = PhaseLost
			return
		}
	}

	s.body = append([]Cell{next}, s.body...)

	if growing {
		s.score++
		s.desiredLen++

		// One cell must stay free to hold food, so a snake one short of
		// the full grid has won. Checked before placement so the placer
		// is never asked for a cell that cannot exist.
		if s.desiredLen >= s.width*s.height-1 {
			s.phase = PhaseWon
			return
		}

		food, err := s.placer.Place(s.body, s.width, s.height)
		if err != nil {
			panic(fmt.Sprintf("game: food placement: %v", err))
		}
		s.food = food
	}

	for len(s.body) > s.desiredLen {
		s.body = s.body[:len(s.body)-1]
	}
}

// Phase returns the session status.
func (s *State) Phase() Phase {
	return s.phase
}

// Score returns the number of food cells consumed.
func (s *State) Score() int {
	return s.score
}

// Heading returns the active heading.
func (s *State) Heading() Heading {
	return s.motion.Heading()
}

// Head returns the snake's current head cell.
func (s *State) Head() Cell {
	return s.body[0]
}

// Food returns the current food cell.
func (s *State) Food() Cell {
	return s.food
}

// Len returns the current body length.
func (s *State) Len() int {
	return len(s.body)
}
