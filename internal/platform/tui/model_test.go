package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametel/snaketerm/internal/core"
	"github.com/ametel/snaketerm/internal/game"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := game.Config{
		Width:         10,
		Height:        10,
		TickInterval:  150 * time.Millisecond,
		InitialLength: 3,
	}
	runtime := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, FPS: 60, Seed: 1}
	m, err := NewModel(cfg, runtime)
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func updateModel(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return got
}

// loseSession drives the snake into the top wall.
func loseSession(t *testing.T, m Model) Model {
	t.Helper()
	base := time.Unix(0, 0)
	m.loop.Advance(base)
	now := base
	for i := 0; m.loop.Snapshot().Phase == game.PhaseRunning && i < 100; i++ {
		now = now.Add(150 * time.Millisecond)
		m.loop.Advance(now)
	}
	if m.loop.Snapshot().Phase != game.PhaseLost {
		t.Fatalf("Phase = %s, expected lost", m.loop.Snapshot().Phase)
	}
	return m
}

func TestModelResizeBackDoesNotBurstTicks(t *testing.T) {
	m := newTestModel(t)
	base := time.Unix(0, 0)

	m = updateModel(t, m, FrameMsg(base)) // establishes the clock

	m = updateModel(t, m, tea.WindowSizeMsg{Width: 5, Height: 5})
	if !m.tooSmall {
		t.Fatal("a 5x5 terminal should not fit the playfield")
	}
	if !m.loop.Held() {
		t.Fatal("loop should be held while the playfield is hidden")
	}

	// Frames keep arriving while the playfield is hidden
	m = updateModel(t, m, FrameMsg(base.Add(10*time.Second)))

	m = updateModel(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.tooSmall {
		t.Fatal("a 40x20 terminal should fit the playfield")
	}
	if m.loop.Held() {
		t.Fatal("loop should be released once the playfield fits again")
	}

	// The first frame after resizing back only spans one frame of real
	// time: the hidden ten seconds must not replay as catch-up ticks.
	m = updateModel(t, m, FrameMsg(base.Add(10*time.Second+16*time.Millisecond)))

	snap := m.loop.Snapshot()
	if snap.Tick != 0 {
		t.Errorf("fired %d ticks on the first frame after resize, expected 0", snap.Tick)
	}
	if snap.Phase != game.PhaseRunning {
		t.Errorf("Phase = %s, expected running", snap.Phase)
	}
}

func TestModelRestartAfterLoss(t *testing.T) {
	m := newTestModel(t)
	m = loseSession(t, m)

	m = updateModel(t, m, runeKey('r'))

	snap := m.loop.Snapshot()
	if snap.Phase != game.PhaseRunning {
		t.Errorf("Phase = %s, expected a fresh running session", snap.Phase)
	}
	if snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("Score = %d, Tick = %d, expected a reset session", snap.Score, snap.Tick)
	}
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	old := m.loop

	m = updateModel(t, m, runeKey('r'))
	if m.loop != old {
		t.Error("restart should be a no-op while the session is running")
	}
}

func TestModelRestartFailureKeepsSession(t *testing.T) {
	m := newTestModel(t)
	m = loseSession(t, m)

	// A config gone bad must not strand the player without a session.
	old := m.loop
	m.gameCfg.Width = 0
	m = updateModel(t, m, runeKey('r'))

	if m.loop != old {
		t.Error("failed restart should keep the previous session")
	}
	if m.loop.Snapshot().Phase != game.PhaseLost {
		t.Errorf("Phase = %s, expected lost", m.loop.Snapshot().Phase)
	}
}
