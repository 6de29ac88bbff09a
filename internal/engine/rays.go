package engine

import (
	"math"

	"github.com/vovakirdan/raycaster/internal/core"
)

// Fan returns count unit vectors evenly spaced around the full circle,
// starting at the reference axis: ray i points at 2π·i/count.
// The fan is recomputed on every call and is for display only; nothing in the
// engine clips rays against walls.
func Fan(count int) []core.Vec2 {
	if count <= 0 {
		return nil
	}
	rays := make([]core.Vec2, count)
	for i := range rays {
		rays[i] = reference.Rotate(2 * math.Pi * float64(i) / float64(count)).Normalize()
	}
	return rays
}
