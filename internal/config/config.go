// Package config provides YAML-based game configuration loading for
// snaketerm.
package config

import (
	"fmt"
	"time"

	"github.com/ametel/snaketerm/internal/game"
)

// SnakeConfig contains all tunable parameters of the game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Snake  SnakeParams  `yaml:"snake"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation speed.
type TimingConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// SnakeParams defines the snake's starting shape.
type SnakeParams struct {
	InitialLength int `yaml:"initial_length"`
}

// Validate checks the recognized option ranges.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 {
		return fmt.Errorf("config: grid.width %d must be positive", c.Grid.Width)
	}
	if c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid.height %d must be positive", c.Grid.Height)
	}
	if c.Timing.TickIntervalMs <= 0 {
		return fmt.Errorf("config: timing.tick_interval_ms %d must be positive", c.Timing.TickIntervalMs)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: snake.initial_length %d must be at least 1", c.Snake.InitialLength)
	}
	return nil
}

// GameConfig converts the file representation into the core's config.
func (c SnakeConfig) GameConfig() game.Config {
	return game.Config{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		TickInterval:  time.Duration(c.Timing.TickIntervalMs) * time.Millisecond,
		InitialLength: c.Snake.InitialLength,
	}
}
