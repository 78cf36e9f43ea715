package game

import "github.com/vovakirdan/snake3d/internal/core"

// Snake is the player-controlled body.
// Body holds previously occupied cells, newest first; the head is not part of it.
type Snake struct {
	Dir  core.Vec3
	Head core.Vec3
	Body []core.Vec3
}

// StartHead and StartDir place a fresh snake in the corner of the grid,
// one cell above the floor, travelling forward.
var (
	StartHead = core.NewVec3(0, 1, 0)
	StartDir  = core.Forward
)

// NewSnake creates a snake with no body at the start position.
func NewSnake() Snake {
	return Snake{
		Dir:  StartDir,
		Head: StartHead,
	}
}

// advance pushes the current head onto the front of the body and steps the head.
func (s *Snake) advance() {
	s.Body = append([]core.Vec3{s.Head}, s.Body...)
	s.Head = s.Head.Add(s.Dir)
}

// dropTail removes the oldest body segment.
func (s *Snake) dropTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any body segment sits on v.
func (s Snake) Occupies(v core.Vec3) bool {
	for _, seg := range s.Body {
		if seg.Equal(v) {
			return true
		}
	}
	return false
}

// Len returns the number of body segments, excluding the head.
func (s Snake) Len() int {
	return len(s.Body)
}
