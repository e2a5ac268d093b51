package config

import (
	_ "embed"
)

//go:embed defaults/snaketerm.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default game configuration: the classic
// 60x25 board at 150ms per tick.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  60,
			Height: 25,
		},
		Timing: TimingConfig{
			TickIntervalMs: 150,
		},
		Snake: SnakeParams{
			InitialLength: 3,
		},
	}
}
