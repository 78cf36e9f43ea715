package window

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/game"
)

const (
	scoreFontSize    = 32
	gameOverFontSize = 48
	hintFontSize     = 20
)

type palette struct {
	background color.RGBA
	grid       color.RGBA
	body       color.RGBA
	head       color.RGBA
	fruit      color.RGBA
	text       color.RGBA
	gameOver   color.RGBA
}

type renderer struct {
	colors palette
	camera rl.Camera3D
}

func newRenderer(cfg config.Config) *renderer {
	c := cfg.Colors
	return &renderer{
		colors: palette{
			background: toColor(c.Background),
			grid:       toColor(c.Grid),
			body:       toColor(c.Body),
			head:       toColor(c.Head),
			fruit:      toColor(c.Fruit),
			text:       toColor(c.Text),
			gameOver:   toColor(c.GameOver),
		},
		camera: rl.Camera3D{
			Position:   rl.NewVector3(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]),
			Up:         rl.NewVector3(cfg.Camera.Up[0], cfg.Camera.Up[1], cfg.Camera.Up[2]),
			Fovy:       cfg.Camera.Fovy,
			Projection: rl.CameraPerspective,
		},
	}
}

// draw renders one frame from a snapshot. best is the board's high score.
func (r *renderer) draw(snap game.Snapshot, best int) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(r.colors.background)

	if snap.GameOver {
		r.drawGameOver(snap.Score, best)
		return
	}

	r.camera.Target = toVector(snap.Head)
	rl.BeginMode3D(r.camera)
	r.drawGrid(snap.GridSize, snap.CellSize)
	r.drawSnake(snap)
	drawCube(snap.Fruit, snap.CellSize, r.colors.fruit)
	rl.EndMode3D()

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), 30, 30, scoreFontSize, r.colors.text)
}

// drawGrid draws the interior lines of the floor on y=0.
func (r *renderer) drawGrid(size int, cell float32) {
	extent := float32(size) * cell
	for i := 1; i < size; i++ {
		pos := float32(i) * cell
		rl.DrawLine3D(rl.NewVector3(pos, 0, 0), rl.NewVector3(pos, 0, extent), r.colors.grid)
		rl.DrawLine3D(rl.NewVector3(0, 0, pos), rl.NewVector3(extent, 0, pos), r.colors.grid)
	}
}

func (r *renderer) drawSnake(snap game.Snapshot) {
	for _, seg := range snap.Body {
		drawCube(seg, snap.CellSize, r.colors.body)
	}
	drawCube(snap.Head, snap.CellSize, r.colors.head)
}

func (r *renderer) drawGameOver(score, best int) {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	title := "Game Over"
	tw := rl.MeasureText(title, gameOverFontSize)
	rl.DrawText(title, (w-tw)/2, h/2-gameOverFontSize, gameOverFontSize, r.colors.gameOver)

	hint := fmt.Sprintf("Score: %d  Best: %d - press R to restart", score, best)
	hw := rl.MeasureText(hint, hintFontSize)
	rl.DrawText(hint, (w-hw)/2, h/2+hintFontSize/2, hintFontSize, r.colors.text)
}

func drawCube(at core.Vec3, size float32, c color.RGBA) {
	rl.DrawCube(toVector(at), size, size, size, c)
}

func toVector(v core.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

func toColor(c config.RGBA) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
