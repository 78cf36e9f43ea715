package game

import (
	"fmt"

	"github.com/vovakirdan/snake3d/internal/core"
)

// Text layout for the top-down view. Each cell is two characters wide so the
// board looks roughly square in a terminal.
const (
	hudHeight = 2
	cellWidth = 2
)

// BoardSize returns the screen size needed to draw the whole board with its HUD.
func BoardSize() (w, h int) {
	return Squares*cellWidth + 2, Squares + 2 + hudHeight
}

// FitsScreen reports whether the board can be drawn on a screen of the given size.
func FitsScreen(w, h int) bool {
	bw, bh := BoardSize()
	return w >= bw && h >= bh
}

// Render draws a top-down view of the snake's plane.
// +X points up the screen and +Z points right, so W moves up and D moves right.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws snap into dst. It is exported so frontends can draw a
// snapshot taken earlier without holding the game.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	renderHUD(dst, snap)

	if !FitsScreen(dst.Width(), dst.Height()) {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	bw, bh := BoardSize()
	ox := (dst.Width() - bw) / 2
	oy := hudHeight
	dst.DrawBox(ox, oy, bw, bh-hudHeight, core.ColorGray)

	for _, seg := range snap.Body {
		drawCell(dst, ox, oy, snap.GridSize, seg, '▒', '▒', core.ColorGreen)
	}
	drawCell(dst, ox, oy, snap.GridSize, snap.Head, '█', '█', core.ColorBrightGreen)
	drawCell(dst, ox, oy, snap.GridSize, snap.Fruit, '●', ' ', core.ColorBrightRed)

	if snap.GameOver {
		renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// drawCell draws one grid cell. Cells off the board are skipped.
func drawCell(dst *core.Screen, ox, oy, size int, v core.Vec3, left, right rune, c core.Color) {
	x, z := int(v.X), int(v.Z)
	if x < 0 || x >= size || z < 0 || z >= size {
		return
	}
	col := ox + 1 + z*cellWidth
	row := oy + 1 + (size - 1 - x)
	dst.SetColor(col, row, left, c)
	dst.SetColor(col+1, row, right, c)
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d", snap.Score)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorDefault)
	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}
