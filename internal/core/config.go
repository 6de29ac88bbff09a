package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation frames per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 200 frames per second matches the pacing the movement constants were tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 200,
	}
}

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Ticks  uint64 // Frames simulated since reset
	Paused bool   // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}

// RunSummary describes what happened during one session, for the run journal.
type RunSummary struct {
	Ticks    uint64
	Distance float64 // cells travelled
	Moves    int     // frames that moved freely
	Slides   int     // frames that slid along a wall
	Blocked  int     // frames that were rejected
}
