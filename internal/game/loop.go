package game

import (
	"time"

	"github.com/ametel/snaketerm/internal/core"
)

// Loop owns session timing. It accumulates wall-clock time between Advance
// calls and fires State.Tick once per fixed interval, so the snake's speed
// does not depend on how often the platform polls input or redraws.
//
// Won and Lost do not stop the loop by themselves: Advance simply fires no
// more ticks and the caller decides when to tear the session down.
type Loop struct {
	state    *State
	interval time.Duration

	last    time.Time
	started bool
	acc     time.Duration

	paused bool
	held   bool
	quit   bool
}

// NewLoop wraps a state with a fixed-interval tick schedule.
func NewLoop(state *State, interval time.Duration) *Loop {
	return &Loop{state: state, interval: interval}
}

// Apply feeds one input event to the session. Direction intents reach the
// motion controller immediately, so within a tick window the last valid
// heading wins. Pause and quit are cooperative flags checked by Advance.
func (l *Loop) Apply(a core.Action) {
	switch a {
	case core.ActionUp:
		l.state.SetHeading(HeadingUp)
	case core.ActionDown:
		l.state.SetHeading(HeadingDown)
	case core.ActionLeft:
		l.state.SetHeading(HeadingLeft)
	case core.ActionRight:
		l.state.SetHeading(HeadingRight)
	case core.ActionPause:
		if l.state.Phase() == PhaseRunning {
			l.paused = !l.paused
		}
	case core.ActionQuit:
		l.quit = true
	}
}

// Advance moves the session clock to now and fires as many ticks as fit in
// the elapsed time. It returns the number of ticks fired. Time spent paused,
// held or after a terminal phase is discarded, so resuming never burst-fires
// catch-up ticks.
func (l *Loop) Advance(now time.Time) int {
	if !l.started {
		l.started = true
		l.last = now
		return 0
	}

	elapsed := now.Sub(l.last)
	if elapsed < 0 {
		elapsed = 0
	}
	l.last = now

	if l.paused || l.held || l.quit || l.state.Phase() != PhaseRunning {
		l.acc = 0
		return 0
	}

	l.acc += elapsed
	fired := 0
	for l.acc >= l.interval {
		l.acc -= l.interval
		l.state.Tick()
		fired++
		if l.state.Phase() != PhaseRunning {
			l.acc = 0
			break
		}
	}
	return fired
}

// SetHeld suspends or resumes tick firing. Unlike pause it is not a player
// action: the platform sets it while it cannot show the playfield, and
// Advance keeps discarding time until it clears.
func (l *Loop) SetHeld(held bool) {
	l.held = held
}

// Held reports whether the platform is holding the session.
func (l *Loop) Held() bool {
	return l.held
}

// Paused reports whether the session is paused.
func (l *Loop) Paused() bool {
	return l.paused
}

// Quitting reports whether a quit event was applied.
func (l *Loop) Quitting() bool {
	return l.quit
}

// Snapshot returns the current render snapshot.
func (l *Loop) Snapshot() Snapshot {
	return l.state.Snapshot()
}

// State exposes the underlying state machine, mainly for tests.
func (l *Loop) State() *State {
	return l.state
}
