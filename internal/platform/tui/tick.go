// Package tui provides the Bubble Tea integration for snaketerm.
// It handles the terminal UI loop, input mapping and frame rendering; the
// game's own timing lives in game.Loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame. Each frame advances the game
// loop's wall clock; the loop decides how many simulation ticks fit.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
