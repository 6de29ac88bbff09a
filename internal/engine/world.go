package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/grid"
)

// Player is the single moving entity.
type Player struct {
	Pos   core.Vec2
	Angle float64
}

// Forward returns the player's facing vector.
func (p Player) Forward() core.Vec2 {
	return Forward(p.Angle)
}

// Tuning holds the per-frame increments applied by held input signals.
type Tuning struct {
	Speed    float64 // cells moved per frame of Advance/Retreat
	TurnStep float64 // radians turned per frame of TurnLeft/TurnRight
	Border   float64 // collision border in cells
}

// Stats accumulates what happened to the player since the last reset.
type Stats struct {
	Ticks    uint64
	Distance float64 // total committed displacement length
	Moves    int     // resolutions that committed the full displacement
	Slides   int     // resolutions that slid along a wall
	Blocked  int     // resolutions that were rejected
}

// Construction errors.
var (
	ErrSpeed        = errors.New("engine: speed must be positive and speed+border below one cell")
	ErrTurnStep     = errors.New("engine: turn step must not be negative")
	ErrStartBlocked = errors.New("engine: start position is not on a floor cell")
)

// World owns the player and moves it through a map, one frame at a time.
// A World is not safe for concurrent use; the map it reads may be shared.
type World struct {
	resolver Resolver
	tuning   Tuning
	start    Player
	player   Player
	last     Resolution
	moved    bool // whether last holds a resolution
	stats    Stats
}

// NewWorld validates the tuning and start position and returns a world with
// the player at start.
func NewWorld(m *grid.Map, start Player, t Tuning) (*World, error) {
	prober, err := NewProber(m, t.Border)
	if err != nil {
		return nil, err
	}
	if t.Speed <= 0 || t.Speed+t.Border >= 1 {
		return nil, fmt.Errorf("%w: speed %g, border %g", ErrSpeed, t.Speed, t.Border)
	}
	if t.TurnStep < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrTurnStep, t.TurnStep)
	}
	row, col := start.Pos.Cell()
	if m.CellAt(row, col) != grid.Floor {
		return nil, fmt.Errorf("%w: (%g, %g) is in cell (row %d, col %d)", ErrStartBlocked, start.Pos.X, start.Pos.Y, row, col)
	}

	return &World{
		resolver: NewResolver(prober),
		tuning:   t,
		start:    start,
		player:   start,
	}, nil
}

// Reset puts the player back at the start and clears statistics.
func (w *World) Reset() {
	w.player = w.start
	w.last = Resolution{}
	w.moved = false
	w.stats = Stats{}
}

// Step applies one frame of held input: turning first, then advance and retreat.
func (w *World) Step(in core.InputFrame) {
	w.stats.Ticks++

	if in.Has(core.ActionTurnLeft) {
		w.player.Angle = Rotate(w.player.Angle, -w.tuning.TurnStep)
	}
	if in.Has(core.ActionTurnRight) {
		w.player.Angle = Rotate(w.player.Angle, w.tuning.TurnStep)
	}
	if in.Has(core.ActionAdvance) {
		w.Move(w.tuning.Speed)
	}
	if in.Has(core.ActionRetreat) {
		w.Move(-w.tuning.Speed)
	}
}

// Move displaces the player by step cells along its facing vector
// (negative steps move backwards) and commits the resolved position.
func (w *World) Move(step float64) Resolution {
	disp := w.player.Forward().Scale(step)
	res := w.resolver.Resolve(w.player.Pos, disp)

	w.stats.Distance += res.Position.Sub(w.player.Pos).Len()
	switch res.Outcome {
	case Moved:
		w.stats.Moves++
	case Slid:
		w.stats.Slides++
	case Blocked:
		w.stats.Blocked++
	}

	w.player.Pos = res.Position
	w.last = res
	w.moved = true
	return res
}

// Player returns the current player state.
func (w *World) Player() Player {
	return w.player
}

// Map returns the map the world moves through.
func (w *World) Map() *grid.Map {
	return w.resolver.Prober.Map()
}

// Tuning returns the world's tuning.
func (w *World) Tuning() Tuning {
	return w.tuning
}

// Stats returns the statistics since the last reset.
func (w *World) Stats() Stats {
	return w.stats
}

// LastResolution returns the most recent movement resolution.
// ok is false if the player has not tried to move since the last reset.
func (w *World) LastResolution() (res Resolution, ok bool) {
	return w.last, w.moved
}
