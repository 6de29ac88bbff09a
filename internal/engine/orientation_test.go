package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/raycaster/internal/core"
)

func TestForward(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected core.Vec2
	}{
		{"zero faces west", 0, core.V(-1, 0)},
		{"half turn faces east", math.Pi, core.V(1, 0)},
		{"start angle faces south", 3 * math.Pi / 2, core.V(0, 1)},
		{"quarter turn faces north", math.Pi / 2, core.V(0, -1)},
		{"full turn wraps", 2*math.Pi + math.Pi, core.V(1, 0)},
		{"negative angle", -math.Pi / 2, core.V(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Forward(tc.angle)
			if !got.ApproxEqual(tc.expected, 1e-9) {
				t.Errorf("Forward(%g) = %v, expected %v", tc.angle, got, tc.expected)
			}
			if math.Abs(got.Len()-1) > 1e-12 {
				t.Errorf("Forward(%g) has length %g", tc.angle, got.Len())
			}
		})
	}
}

func TestRotate(t *testing.T) {
	if got := Rotate(1.25, 0); got != 1.25 {
		t.Errorf("Rotate(a, 0) = %g, expected 1.25", got)
	}

	a, d1, d2 := 0.3, 0.7, -1.9
	stepwise := Forward(Rotate(Rotate(a, d1), d2))
	combined := Forward(Rotate(a, d1+d2))
	if !stepwise.ApproxEqual(combined, 1e-12) {
		t.Errorf("rotations do not compose: %v vs %v", stepwise, combined)
	}

	// Turning right by a step then left by the same step restores the facing.
	step := math.Pi / 200
	back := Forward(Rotate(Rotate(a, step), -step))
	if !back.ApproxEqual(Forward(a), 1e-12) {
		t.Errorf("right then left = %v, expected %v", back, Forward(a))
	}
}

func TestRotateIsNotWrapped(t *testing.T) {
	angle := 0.0
	for i := 0; i < 400; i++ {
		angle = Rotate(angle, math.Pi/200)
	}
	if math.Abs(angle-2*math.Pi) > 1e-9 {
		t.Errorf("400 quarter-degree steps = %g, expected 2π", angle)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tc := range tests {
		got := NormalizeAngle(tc.in)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("NormalizeAngle(%g) = %g, expected %g", tc.in, got, tc.expected)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%g) = %g, out of range", tc.in, got)
		}
	}
}

func TestDegrees(t *testing.T) {
	if got := Degrees(math.Pi); math.Abs(got-180) > 1e-12 {
		t.Errorf("Degrees(π) = %g, expected 180", got)
	}
	if got := Degrees(3 * math.Pi / 2); math.Abs(got-270) > 1e-12 {
		t.Errorf("Degrees(3π/2) = %g, expected 270", got)
	}
}
