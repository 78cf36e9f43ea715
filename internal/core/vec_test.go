package core

import "testing"

func TestVec3Add(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"forward step", NewVec3(5, 1, 5), Forward, NewVec3(6, 1, 5)},
		{"back step", NewVec3(0, 1, 0), Back, NewVec3(-1, 1, 0)},
		{"left step", NewVec3(3, 1, 3), Left, NewVec3(3, 1, 2)},
		{"right step", NewVec3(3, 1, 19), Right, NewVec3(3, 1, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.expected {
				t.Errorf("Add() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec3Equal(t *testing.T) {
	if !NewVec3(1, 2, 3).Equal(Vec3{X: 1, Y: 2, Z: 3}) {
		t.Error("identical vectors should be equal")
	}
	if NewVec3(1, 2, 3).Equal(NewVec3(1, 2, 4)) {
		t.Error("different vectors should not be equal")
	}
}

func TestDirectionsAreUnitAxes(t *testing.T) {
	for _, d := range []Vec3{Forward, Back, Left, Right} {
		sum := abs32(d.X) + abs32(d.Y) + abs32(d.Z)
		if sum != 1 {
			t.Errorf("direction %v is not a unit axis vector", d)
		}
	}
}

func TestVec3String(t *testing.T) {
	if got := NewVec3(19, 1, 0).String(); got != "(19,1,0)" {
		t.Errorf("String() = %q", got)
	}
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
