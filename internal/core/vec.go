// Package core provides fundamental types shared by the snake simulation and
// its frontends. It has no external dependencies (no raylib, no Bubble Tea) so
// that game logic stays pure and testable.
package core

import "fmt"

// Vec3 is a position or direction in grid space. One unit is one cell.
// Components are always whole numbers in practice, so exact equality is safe.
type Vec3 struct {
	X, Y, Z float32
}

// Axis-aligned unit directions the snake can travel in.
var (
	Forward = Vec3{X: 1}
	Back    = Vec3{X: -1}
	Left    = Vec3{Z: -1}
	Right   = Vec3{Z: 1}
)

// NewVec3 creates a vector from its components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Equal reports whether both vectors name the same cell.
func (v Vec3) Equal(o Vec3) bool {
	return v == o
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}
