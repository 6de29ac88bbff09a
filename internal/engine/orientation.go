package engine

import (
	"math"

	"github.com/vovakirdan/raycaster/internal/core"
)

// reference is the axis every direction is rotated from.
var reference = core.V(1, 0)

// Rotate returns angle turned by delta. The result is not wrapped; every
// consumer goes through periodic trigonometric functions.
func Rotate(angle, delta float64) float64 {
	return angle + delta
}

// Forward returns the unit facing vector for angle. The reference axis is
// rotated by angle-π, so angle 3π/2 faces south (+Y) and π/2 faces north.
func Forward(angle float64) core.Vec2 {
	return reference.Rotate(angle - math.Pi)
}

// NormalizeAngle maps angle into [0, 2π). Used for display only.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Degrees converts radians to degrees.
func Degrees(angle float64) float64 {
	return angle * 180 / math.Pi
}
