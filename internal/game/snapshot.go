package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/snake3d/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it never affects the game.
type Snapshot struct {
	Tick     uint64
	Head     core.Vec3
	Body     []core.Vec3 // Newest first
	Dir      core.Vec3
	Fruit    core.Vec3
	Score    int
	GameOver bool
	GridSize int
	CellSize float32
	Interval time.Duration
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	body := make([]core.Vec3, len(g.snake.Body))
	copy(body, g.snake.Body)

	return Snapshot{
		Tick:     g.ticks,
		Head:     g.snake.Head,
		Body:     body,
		Dir:      g.snake.Dir,
		Fruit:    g.fruit,
		Score:    g.score,
		GameOver: g.gameOver,
		GridSize: g.grid.Size,
		CellSize: g.grid.CellSize,
		Interval: g.interval,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Interval: %v\n", g.ticks, g.score, g.interval)
	fmt.Fprintf(&b, "Body len: %d, Direction: %v\n", g.snake.Len(), g.snake.Dir)
	fmt.Fprintf(&b, "Head: %v, Fruit: %v\n", g.snake.Head, g.fruit)
	fmt.Fprintf(&b, "GameOver: %v\n", g.gameOver)
	return b.String()
}
