// Package game implements the snake simulation: the per-tick movement and
// collision rule, the wall-clock gate that decides when a tick happens, and
// restart. It has no rendering dependencies; frontends read Snapshot values.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
)

// Game holds the complete state of one run.
type Game struct {
	grid   Grid
	timing config.Timing
	rng    *rand.Rand

	snake    Snake
	fruit    core.Vec3
	score    int
	interval time.Duration // Time between ticks; shrinks per fruit with no floor
	lastTick time.Time
	ticks    uint64
	gameOver bool
}

// New creates a game paced by the given timing. Call Reset before Update.
func New(timing config.Timing) *Game {
	return &Game{
		grid:   DefaultGrid(),
		timing: timing,
	}
}

// Reset seeds the fruit RNG and starts a fresh run at now.
func (g *Game) Reset(cfg core.RuntimeConfig, now time.Time) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.Restart(now)
}

// Restart replaces the whole run with a fresh one: new snake, new fruit,
// zero score and the initial interval. The RNG stream carries on.
func (g *Game) Restart(now time.Time) {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(now.UnixNano()))
	}
	g.snake = NewSnake()
	g.fruit = g.spawnFruit()
	g.score = 0
	g.interval = g.timing.Initial()
	g.lastTick = now
	g.ticks = 0
	g.gameOver = false
}

// Update runs one frame. While playing, the last movement key of the frame
// sets the direction and the snake advances if more than the current interval
// has elapsed since the previous tick. The restart action is read after the
// advance, so a run that ends this frame can restart in the same frame.
func (g *Game) Update(now time.Time, in core.InputFrame) core.StepResult {
	var res core.StepResult

	if !g.gameOver {
		if dir, ok := in.LastDirection(); ok {
			g.SetDirection(dir)
		}

		if now.Sub(g.lastTick) > g.interval {
			g.lastTick = now
			res = g.Tick()
		}
	}

	if g.gameOver && in.Has(core.ActionRestart) {
		g.Restart(now)
		res.Restarted = true
	}

	res.State = g.State()
	return res
}

// Tick advances the snake by one cell.
//
// The old head is pushed onto the body and the head steps along the current
// direction. Landing on the fruit grows the snake (the tail is kept), moves
// the fruit, scores a point and shortens the interval; otherwise the tail is
// dropped so the length is unchanged. The run ends if the head left the grid
// or landed on a remaining body segment.
func (g *Game) Tick() core.StepResult {
	res := core.StepResult{Ticked: true}
	g.ticks++

	g.snake.advance()

	if g.snake.Head.Equal(g.fruit) {
		g.fruit = g.spawnFruit()
		g.score++
		g.interval -= g.timing.Step()
		res.Ate = true
	} else {
		g.snake.dropTail()
	}

	if !g.grid.Contains(g.snake.Head) || g.snake.Occupies(g.snake.Head) {
		g.gameOver = true
		res.Died = true
		res.FinalScore = g.score
	}

	res.State = g.State()
	return res
}

// spawnFruit picks a uniformly random cell on the snake's plane.
// Cells under the snake are not excluded.
func (g *Game) spawnFruit() core.Vec3 {
	return core.NewVec3(
		float32(g.rng.Intn(g.grid.Size)),
		StartHead.Y,
		float32(g.rng.Intn(g.grid.Size)),
	)
}

// SetDirection steers the snake. Reversal is not prevented.
func (g *Game) SetDirection(dir core.Vec3) {
	g.snake.Dir = dir
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Interval returns the current time between ticks.
func (g *Game) Interval() time.Duration {
	return g.interval
}
