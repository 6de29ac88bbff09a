package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := V(1.5, -2)
	b := V(0.5, 4)

	if got := a.Add(b); got != V(2, 2) {
		t.Errorf("Add() = %v, expected (2, 2)", got)
	}
	if got := a.Sub(b); got != V(1, -6) {
		t.Errorf("Sub() = %v, expected (1, -6)", got)
	}
	if got := b.Scale(2); got != V(1, 8) {
		t.Errorf("Scale() = %v, expected (1, 8)", got)
	}
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > eps {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}
	if !n.ApproxEqual(V(0.6, 0.8), eps) {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}

	// Zero vector stays zero
	if got := V(0, 0).Normalize(); got != V(0, 0) {
		t.Errorf("Normalize() of zero = %v, expected zero", got)
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected Vec2
	}{
		{"zero", 0, V(1, 0)},
		{"quarter", math.Pi / 2, V(0, 1)},
		{"half", math.Pi, V(-1, 0)},
		{"three quarters", 3 * math.Pi / 2, V(0, -1)},
		{"negative quarter", -math.Pi / 2, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := V(1, 0).Rotate(tc.angle)
			if !got.ApproxEqual(tc.expected, eps) {
				t.Errorf("Rotate(%f) = %v, expected %v", tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVecCell(t *testing.T) {
	tests := []struct {
		v        Vec2
		row, col int
	}{
		{V(1.5, 1.5), 1, 1},
		{V(0.99, 2.01), 2, 0},
		{V(12.0, 0.0), 0, 12},
		{V(-0.25, 0.5), 0, -1}, // floors, does not truncate toward zero
	}

	for _, tc := range tests {
		row, col := tc.v.Cell()
		if row != tc.row || col != tc.col {
			t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.v, row, col, tc.row, tc.col)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
