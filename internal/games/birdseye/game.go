// Package birdseye implements the top-down arena view: one player moving and
// turning through a grid map, with its ray fan and facing indicator drawn
// over the tiles.
package birdseye

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/raycaster/internal/config"
	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/engine"
	"github.com/vovakirdan/raycaster/internal/levels"
	"github.com/vovakirdan/raycaster/internal/registry"
)

// Package-level engine config used by registry factories (set by the CLI).
var (
	engineCfg   = config.DefaultEngineConfig()
	engineCfgMu sync.RWMutex
)

// SetEngineConfig sets the config used by games created through the registry.
func SetEngineConfig(cfg config.EngineConfig) {
	engineCfgMu.Lock()
	defer engineCfgMu.Unlock()
	engineCfg = cfg
}

// EngineConfig returns the config used by games created through the registry.
func EngineConfig() config.EngineConfig {
	engineCfgMu.RLock()
	defer engineCfgMu.RUnlock()
	return engineCfg
}

func init() {
	for _, a := range levels.Builtin() {
		registry.Register(a.ID, func() registry.Game {
			return New(a)
		})
	}
}

// Game drives an engine.World over one arena.
type Game struct {
	arena levels.Arena
	cfg   config.EngineConfig
	world *engine.World
	err   error // why the world could not be built, if it could not

	showRays bool
	paused   bool
	tooSmall bool

	screenW, screenH       int
	mapOffsetX, mapOffsetY int
}

// New creates a game for the arena with the package-level engine config.
func New(a levels.Arena) *Game {
	return NewWithConfig(a, EngineConfig())
}

// NewWithConfig creates a game for the arena with an explicit engine config.
func NewWithConfig(a levels.Arena, cfg config.EngineConfig) *Game {
	g := &Game{arena: a, cfg: cfg, showRays: cfg.Rays.Enabled}
	if err := cfg.Validate(); err != nil {
		g.err = err
		return g
	}
	g.world, g.err = engine.NewWorld(a.Map, a.Start, cfg.Tuning())
	return g
}

// ID returns the arena ID.
func (g *Game) ID() string {
	return g.arena.ID
}

// Title returns the arena name.
func (g *Game) Title() string {
	return g.arena.Title()
}

// Detail returns the map size, e.g. "13x13".
func (g *Game) Detail() string {
	return fmt.Sprintf("%dx%d", g.arena.Map.Width(), g.arena.Map.Height())
}

// Err reports why the game cannot run, or nil.
func (g *Game) Err() error {
	return g.err
}

// Reset puts the player back at the arena start and lays out the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.paused = false
	g.showRays = g.cfg.Rays.Enabled
	if g.world != nil {
		g.world.Reset()
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize lays the map out for a new screen size, keeping the player where it is.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h

	mapW := g.arena.Map.Width() * cellWidth
	mapH := g.arena.Map.Height()
	if w < mapW || h < mapH+hudHeight+footerHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map below the HUD
	g.mapOffsetX = (w - mapW) / 2
	g.mapOffsetY = hudHeight + (h-hudHeight-footerHeight-mapH)/2
}

// Step advances the game by one frame.
// Pause and ray toggles are edge-triggered: the platform sends them once per press.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionToggleRays) {
		g.showRays = !g.showRays
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(in)
	return core.StepResult{State: g.State()}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.world != nil {
		st.Ticks = g.world.Stats().Ticks
	}
	return st
}

// Summary returns the session statistics for the run journal.
func (g *Game) Summary() core.RunSummary {
	if g.world == nil {
		return core.RunSummary{}
	}
	s := g.world.Stats()
	return core.RunSummary{
		Ticks:    s.Ticks,
		Distance: s.Distance,
		Moves:    s.Moves,
		Slides:   s.Slides,
		Blocked:  s.Blocked,
	}
}

// World exposes the underlying world, nil if the game could not be built.
func (g *Game) World() *engine.World {
	return g.world
}
