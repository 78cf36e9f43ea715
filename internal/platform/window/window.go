// Package window provides the raylib 3D frontend: the snake drawn as cubes
// above a line grid, followed by a fixed camera.
package window

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/game"
	"github.com/vovakirdan/snake3d/internal/registry"
)

// ID names this frontend and its leaderboard.
const ID = "window"

// Frontend runs the game in a raylib window.
type Frontend struct{}

func init() {
	registry.Register(Frontend{})
}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (Frontend) Title() string {
	return "3D window"
}

// Run opens the window and plays until it is closed or ctx is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	cfg := env.Config
	rt := env.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		return errors.New("window: could not open window")
	}
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	g := game.New(cfg.Timing)
	g.Reset(rt, time.Now())
	env.Logger.Debug("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height, "seed", rt.Seed)

	r := newRenderer(cfg)
	best := env.BestScore(ID)
	frame := core.NewInputFrame()

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		frame.Clear()
		pollKeys(&frame)

		res := g.Update(time.Now(), frame)
		if res.Ate {
			env.Logger.Debug("fruit eaten", "score", res.State.Score, "interval", g.Interval())
		}
		if res.Restarted {
			env.Logger.Debug("restarted")
		}
		env.RecordRun(ID, res)
		if res.Died {
			env.Logger.Debug("final state", "state", g.DebugState())
			best = env.BestScore(ID)
		}

		r.draw(g.Snapshot(), best)
	}

	return nil
}

// pollKeys drains raylib's key queue in press order.
func pollKeys(frame *core.InputFrame) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		frame.Set(actionForKey(key))
	}
}

// actionForKey maps a raylib key code to a game action.
func actionForKey(key int32) core.Action {
	switch key {
	case rl.KeyW:
		return core.ActionForward
	case rl.KeyS:
		return core.ActionBack
	case rl.KeyA:
		return core.ActionLeft
	case rl.KeyD:
		return core.ActionRight
	case rl.KeyR:
		return core.ActionRestart
	}
	return core.ActionNone
}
