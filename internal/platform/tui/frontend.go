package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake3d/internal/registry"
)

// ID is the registry ID and score board of the terminal frontend.
const ID = "terminal"

func init() {
	registry.Register(Frontend{})
}

// Frontend plays the game in the terminal as a top-down view of the snake's plane.
type Frontend struct{}

// ID returns "terminal".
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (top-down)" }

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	model := NewModel(env, time.Now())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
