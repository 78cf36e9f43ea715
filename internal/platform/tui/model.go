package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/game"
	"github.com/vovakirdan/snake3d/internal/registry"
)

// Model is the Bubble Tea model for one terminal run of the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	env        registry.Env
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int // High score on the terminal board
	quitting   bool
}

// NewModel creates a Bubble Tea model for a fresh game started at now.
func NewModel(env registry.Env, now time.Time) Model {
	cfg := env.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = now.UnixNano()
	}

	g := game.New(env.Config.Timing)
	g.Reset(cfg, now)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:        env,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		best:       env.BestScore(ID),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil && m.env.Logger != nil {
			m.env.Logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the run carries on; it is paused while it does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !game.FitsScreen(m.screen.Width(), m.screen.Height()) {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	res := m.game.Update(now, m.inputFrame)
	m.gameState = res.State
	m.env.RecordRun(ID, res)
	if res.Died {
		m.best = m.env.BestScore(ID)
	}

	if m.env.Logger != nil {
		switch {
		case res.Died:
			m.env.Logger.Debug("final state", "state", m.game.DebugState())
		case res.Ate:
			m.env.Logger.Debug("fruit eaten", "score", res.State.Score, "interval", m.game.Interval())
		case res.Restarted:
			m.env.Logger.Debug("restarted", "player", m.env.Player)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current board as plain text to ~/.snake3d/screenshots.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)
	m.drawBest()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: home dir: %w", err)
	}
	dir := filepath.Join(home, ".snake3d", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: write screenshot: %w", err)
	}
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawBest()
	return RenderScreen(m.screen)
}

// drawBest right-aligns the board's high score on the HUD line.
func (m Model) drawBest() {
	text := fmt.Sprintf("Best: %d ", m.best)
	if x := m.screen.Width() - len(text); x > 0 {
		m.screen.DrawTextColor(x, 0, text, core.ColorYellow)
	}
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Snapshot returns a copy of the game state for inspection.
func (m Model) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}
