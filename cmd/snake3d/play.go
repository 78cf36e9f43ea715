package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake3d/internal/platform/window"
	"github.com/vovakirdan/snake3d/internal/registry"
)

const defaultFrontend = window.ID

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen frontend.

Controls:
  W / Up      - Move +X
  S / Down    - Move -X
  A / Left    - Move -Z
  D / Right   - Move +Z
  R           - Restart (after game over)
  Esc/Q       - Quit (terminal), Esc or close the window (window)

The arrow keys only work in the terminal frontend.

Examples:
  snake3d play
  snake3d play --frontend terminal
  snake3d play --seed 42 --config ./my-snake3d.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return play(cmd.Context(), flagFrontend)
	},
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", defaultFrontend, "Frontend to play on (see 'snake3d list')")
}

// play runs one frontend until the player quits or the process is interrupted.
func play(parent context.Context, frontendID string) error {
	frontend, err := registry.Get(frontendID)
	if err != nil {
		return fmt.Errorf("%w\nRun 'snake3d list' to see available frontends", err)
	}

	// Terminal size is used by the terminal frontend; the window sizes itself from config.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	env, err := newEnv("snake3d", width, height)
	if err != nil {
		return err
	}
	if env.Store != nil {
		defer env.Store.Close()
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.Logger.Debug("starting", "frontend", frontend.ID(), "seed", env.Runtime.Seed, "fps", env.Runtime.TickRate)
	if err := frontend.Run(ctx, env); err != nil {
		return fmt.Errorf("running %s: %w", frontend.ID(), err)
	}
	return nil
}
