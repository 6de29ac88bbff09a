package engine

import "github.com/vovakirdan/raycaster/internal/core"

// Outcome describes how a displacement was committed.
type Outcome int

const (
	Moved   Outcome = iota // full displacement committed
	Slid                   // one axis blocked, the other committed
	Blocked                // two or more sides hit, nothing committed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Slid:
		return "slid"
	case Blocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Resolution is the result of one Resolve call.
type Resolution struct {
	Position core.Vec2 // committed position
	Mask     Mask      // sides probed as walls at the candidate
	Outcome  Outcome
}

// Resolver commits displacements against the walls reported by a Prober.
type Resolver struct {
	Prober Prober
}

// NewResolver wraps a prober.
func NewResolver(p Prober) Resolver {
	return Resolver{Prober: p}
}

// Resolve applies disp to current and resolves it against the map.
//
// A single colliding side cancels the displacement along its axis and keeps
// the other one, so the entity slides along the wall. Two or more colliding
// sides reject the move entirely. This also blocks some moves near convex
// corners where sliding would have been possible.
func (r Resolver) Resolve(current, disp core.Vec2) Resolution {
	candidate := current.Add(disp)
	mask := r.Prober.Probe(candidate, disp)

	switch mask.Count() {
	case 0:
		return Resolution{Position: candidate, Mask: mask, Outcome: Moved}
	case 1:
		side, _ := mask.Single()
		pos := current
		if side.Horizontal() {
			pos.Y = candidate.Y
		} else {
			pos.X = candidate.X
		}
		return Resolution{Position: pos, Mask: mask, Outcome: Slid}
	default:
		return Resolution{Position: current, Mask: mask, Outcome: Blocked}
	}
}
