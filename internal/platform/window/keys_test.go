//go:build raylib

// Building this package links raylib through cgo, which needs the OpenGL and
// X11 development headers. Run with: go test -tags raylib ./internal/platform/window
package window

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake3d/internal/core"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name   string
		key    int32
		action core.Action
	}{
		{"w", rl.KeyW, core.ActionForward},
		{"s", rl.KeyS, core.ActionBack},
		{"a", rl.KeyA, core.ActionLeft},
		{"d", rl.KeyD, core.ActionRight},
		{"r", rl.KeyR, core.ActionRestart},
		{"up arrow", rl.KeyUp, core.ActionNone},
		{"escape", rl.KeyEscape, core.ActionNone},
		{"none", 0, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionForKey(tt.key); got != tt.action {
				t.Errorf("actionForKey(%d) = %v, want %v", tt.key, got, tt.action)
			}
		})
	}
}

func TestActionForKeyDirections(t *testing.T) {
	tests := []struct {
		key  int32
		want core.Vec3
	}{
		{rl.KeyW, core.Forward},
		{rl.KeyS, core.Back},
		{rl.KeyA, core.Left},
		{rl.KeyD, core.Right},
	}

	for _, tt := range tests {
		dir, ok := actionForKey(tt.key).Direction()
		if !ok || dir != tt.want {
			t.Errorf("key %d moves %v (ok=%v), want %v", tt.key, dir, ok, tt.want)
		}
	}
}
