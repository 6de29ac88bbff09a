// Package engine implements grid movement for a single entity: the directional
// collision prober, the sliding movement resolver, the orientation model and the
// ray fan used for display. Everything here is pure per-frame computation over
// an immutable grid.Map.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/grid"
)

// Side is one of the four probed directions around the entity.
type Side int

const (
	East Side = iota
	North
	West
	South
)

// Sides lists the sides in probe order.
var Sides = [4]Side{East, North, West, South}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the side is probed along the x axis.
func (s Side) Horizontal() bool {
	return s == East || s == West
}

// offset returns the probe offset for a side, scaled by border.
func (s Side) offset(border float64) core.Vec2 {
	switch s {
	case East:
		return core.V(border, 0)
	case North:
		return core.V(0, -border)
	case West:
		return core.V(-border, 0)
	default:
		return core.V(0, border)
	}
}

// facedAway reports whether a move along v travels away from the side,
// in which case the side is not probed. Zero components skip nothing.
func (s Side) facedAway(v core.Vec2) bool {
	switch s {
	case East:
		return v.X < 0
	case North:
		return v.Y > 0
	case West:
		return v.X > 0
	default:
		return v.Y < 0
	}
}

// Mask is the set of sides whose probe hit a wall.
type Mask struct {
	East, North, West, South bool
}

// Has reports whether the side is in the set.
func (m Mask) Has(s Side) bool {
	switch s {
	case East:
		return m.East
	case North:
		return m.North
	case West:
		return m.West
	case South:
		return m.South
	default:
		return false
	}
}

func (m *Mask) set(s Side) {
	switch s {
	case East:
		m.East = true
	case North:
		m.North = true
	case West:
		m.West = true
	case South:
		m.South = true
	}
}

// Count returns the number of sides in the set.
func (m Mask) Count() int {
	n := 0
	for _, s := range Sides {
		if m.Has(s) {
			n++
		}
	}
	return n
}

// Empty reports whether no side collided.
func (m Mask) Empty() bool {
	return m.Count() == 0
}

// Single returns the only side in the set. ok is false unless exactly one side is set.
func (m Mask) Single() (side Side, ok bool) {
	if m.Count() != 1 {
		return 0, false
	}
	for _, s := range Sides {
		if m.Has(s) {
			return s, true
		}
	}
	return 0, false
}

// String lists the set sides, e.g. "north+west", or "none".
func (m Mask) String() string {
	var parts []string
	for _, s := range Sides {
		if m.Has(s) {
			parts = append(parts, s.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ErrBorder is returned for a collision border outside (0, 1).
var ErrBorder = errors.New("engine: collision border must be in (0, 1)")

// Prober classifies which sides of a point touch a wall.
type Prober struct {
	m      *grid.Map
	border float64
}

// NewProber creates a prober over m. border is the probe distance in cells.
func NewProber(m *grid.Map, border float64) (Prober, error) {
	if m == nil {
		return Prober{}, errors.New("engine: nil map")
	}
	if border <= 0 || border >= 1 {
		return Prober{}, fmt.Errorf("%w: got %g", ErrBorder, border)
	}
	return Prober{m: m, border: border}, nil
}

// Map returns the map the prober reads.
func (p Prober) Map() *grid.Map {
	return p.m
}

// Border returns the probe distance.
func (p Prober) Border() float64 {
	return p.border
}

// Probe checks the four cells one border away from candidate and reports the
// walls among them. Sides the move travels away from are never reported.
func (p Prober) Probe(candidate, move core.Vec2) Mask {
	var mask Mask
	for _, s := range Sides {
		if s.facedAway(move) {
			continue
		}
		row, col := candidate.Add(s.offset(p.border)).Cell()
		if p.m.IsWall(row, col) {
			mask.set(s)
		}
	}
	return mask
}
