package birdseye

// Snapshot contains the observable game state for determinism checks and
// the headless frame command. Uses primitive types only.
type Snapshot struct {
	Arena    string
	Tick     uint64
	X, Y     float64
	Angle    float64
	Paused   bool
	ShowRays bool

	Distance float64
	Moves    int
	Slides   int
	Blocked  int

	// Latest resolution, empty before the first move
	Outcome string
	Mask    string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Arena:    g.arena.ID,
		Paused:   g.paused,
		ShowRays: g.showRays,
	}
	if g.world == nil {
		return s
	}

	p := g.world.Player()
	st := g.world.Stats()
	s.Tick = st.Ticks
	s.X, s.Y = p.Pos.X, p.Pos.Y
	s.Angle = p.Angle
	s.Distance = st.Distance
	s.Moves, s.Slides, s.Blocked = st.Moves, st.Slides, st.Blocked

	if res, ok := g.world.LastResolution(); ok {
		s.Outcome = res.Outcome.String()
		s.Mask = res.Mask.String()
	}
	return s
}
