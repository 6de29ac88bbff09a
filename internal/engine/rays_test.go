package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/raycaster/internal/core"
)

func TestFan(t *testing.T) {
	const n = 50
	rays := Fan(n)

	if len(rays) != n {
		t.Fatalf("Fan(%d) returned %d rays", n, len(rays))
	}
	if !rays[0].ApproxEqual(core.V(1, 0), 1e-12) {
		t.Errorf("first ray = %v, expected (1, 0)", rays[0])
	}

	spacing := 2 * math.Pi / n
	for i, r := range rays {
		if math.Abs(r.Len()-1) > 1e-12 {
			t.Errorf("ray %d has length %g", i, r.Len())
		}
		next := rays[(i+1)%n]
		// Angle between consecutive rays via the dot product.
		between := math.Acos(math.Max(-1, math.Min(1, r.X*next.X+r.Y*next.Y)))
		if math.Abs(between-spacing) > 1e-9 {
			t.Errorf("rays %d and %d are %g apart, expected %g", i, (i+1)%n, between, spacing)
		}
	}
}

func TestFanEmpty(t *testing.T) {
	for _, n := range []int{0, -1, -50} {
		if rays := Fan(n); rays != nil {
			t.Errorf("Fan(%d) = %v, expected nil", n, rays)
		}
	}
}

func TestFanIsRecomputed(t *testing.T) {
	a := Fan(8)
	b := Fan(8)
	a[0] = core.V(0, 0)
	if !b[0].ApproxEqual(core.V(1, 0), 1e-12) {
		t.Error("Fan calls share storage")
	}
}
