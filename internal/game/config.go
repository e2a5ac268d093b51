package game

import (
	"fmt"
	"time"
)

// Config holds the fixed parameters of a game session.
type Config struct {
	Width         int           // Grid width in cells
	Height        int           // Grid height in cells
	TickInterval  time.Duration // Wall-clock time between simulation steps
	InitialLength int           // Snake length at session start
}

// DefaultConfig returns the classic board: a 60x25 grid, 150ms ticks and
// three starting segments.
func DefaultConfig() Config {
	return Config{
		Width:         60,
		Height:        25,
		TickInterval:  150 * time.Millisecond,
		InitialLength: 3,
	}
}

// Validate checks the config against the limits a session can start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("game: grid %dx%d is not positive", c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("game: tick interval %v is not positive", c.TickInterval)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("game: initial length %d, need at least 1", c.InitialLength)
	}
	// The body spawns trailing downward from the grid center and the win
	// threshold must still be ahead of the starting length.
	if c.InitialLength > c.Height-c.Height/2 {
		return fmt.Errorf("game: initial length %d does not fit a %dx%d grid", c.InitialLength, c.Width, c.Height)
	}
	if c.InitialLength >= c.Width*c.Height-1 {
		return fmt.Errorf("game: initial length %d leaves no room to win on a %dx%d grid", c.InitialLength, c.Width, c.Height)
	}
	return nil
}
