package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ametel/snaketerm/internal/core"
	"github.com/ametel/snaketerm/internal/game"
)

// Model is the Bubble Tea model for a single game session. It owns the
// screen buffer and forwards time and input to the game loop; all game
// rules live on the other side of the Loop boundary.
type Model struct {
	gameCfg game.Config
	runtime core.RuntimeConfig

	loop   *game.Loop
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	tooSmall bool
	quitting bool
}

// NewModel creates a session model for the given game and runtime config.
func NewModel(gameCfg game.Config, runtime core.RuntimeConfig) (Model, error) {
	// Use a time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.FPS <= 0 {
		runtime.FPS = core.DefaultRuntimeConfig().FPS
	}

	loop, err := newSession(gameCfg, runtime.Seed)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		gameCfg: gameCfg,
		runtime: runtime,
		loop:    loop,
		screen:  core.NewScreen(runtime.ScreenW, screenRows(runtime.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = runtime.ScreenW
	m.tooSmall = !m.fits()
	m.loop.SetHeld(m.tooSmall)
	return m, nil
}

// newSession builds a fresh state machine and loop.
func newSession(cfg game.Config, seed int64) (*game.Loop, error) {
	state, err := game.NewState(cfg, game.NewRandomPlacer(seed))
	if err != nil {
		return nil, err
	}
	return game.NewLoop(state, cfg.TickInterval), nil
}

// screenRows reserves the bottom terminal row for the help bar.
func screenRows(termH int) int {
	return core.Max(1, termH-1)
}

func (m Model) fits() bool {
	_, ok := fieldRect(m.screen, m.gameCfg.Width, m.gameCfg.Height)
	return ok
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, screenRows(msg.Height))
		m.help.Width = msg.Width
		m.tooSmall = !m.fits()
		m.loop.SetHeld(m.tooSmall)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to game events. Direction changes apply
// immediately; between two ticks the last one wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.loop.Apply(action)
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.loop.Snapshot().Phase != game.PhaseRunning {
			loop, err := newSession(m.gameCfg, time.Now().UnixNano())
			if err != nil {
				log.Error("cannot restart session", "error", err)
				return m, nil
			}
			loop.SetHeld(m.tooSmall)
			m.loop = loop
		}
		return m, nil

	default:
		m.loop.Apply(action)
		return m, nil
	}
}

// handleFrame advances the game clock by one render frame. The loop sees
// every frame even while held, so its clock never goes stale.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.loop.Advance(now)

	if m.loop.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, frameCmd(m.runtime.FPS)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawFrame(m.screen, m.loop.Snapshot(), m.loop.Paused())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program for one local game session.
func Run(gameCfg game.Config, runtime core.RuntimeConfig) error {
	model, err := NewModel(gameCfg, runtime)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
