package game

import "github.com/vovakirdan/snake3d/internal/core"

// Squares is the number of cells along each axis of the board.
const Squares = 20

// Grid is the fixed playing field. It bounds the snake on every axis.
type Grid struct {
	Size     int     // Cells per axis
	CellSize float32 // Edge length of one cell in world units
}

// DefaultGrid returns the 20x20x20 grid with unit cells.
func DefaultGrid() Grid {
	return Grid{Size: Squares, CellSize: 1.0}
}

// Contains reports whether v lies inside [0, Size) on all three axes.
func (g Grid) Contains(v core.Vec3) bool {
	size := float32(g.Size)
	return v.X >= 0 && v.Y >= 0 && v.Z >= 0 &&
		v.X < size && v.Y < size && v.Z < size
}
