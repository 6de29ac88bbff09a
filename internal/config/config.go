// Package config provides engine tuning loaded from YAML or TOML files,
// with embedded defaults and named pace presets.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/raycaster/internal/engine"
)

// EngineConfig contains all tunable engine and display parameters.
type EngineConfig struct {
	Movement MovementConfig `yaml:"movement" toml:"movement"`
	Rays     RaysConfig     `yaml:"rays" toml:"rays"`
	Input    InputConfig    `yaml:"input" toml:"input"`
}

// MovementConfig defines per-frame movement and collision parameters.
type MovementConfig struct {
	Speed           float64 `yaml:"speed" toml:"speed"`                       // cells per frame
	LookSpeed       float64 `yaml:"look_speed" toml:"look_speed"`             // frames per half turn
	CollisionBorder float64 `yaml:"collision_border" toml:"collision_border"` // probe distance in cells
}

// RaysConfig defines the displayed ray fan.
type RaysConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Count   int     `yaml:"count" toml:"count"`
	Length  float64 `yaml:"length" toml:"length"` // in cells
}

// InputConfig defines how key presses become held signals.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"` // how long a press stays held
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid engine config")

// Validate checks that the configuration can drive an engine.World.
func (c EngineConfig) Validate() error {
	m := c.Movement
	switch {
	case m.CollisionBorder <= 0 || m.CollisionBorder >= 1:
		return fmt.Errorf("%w: collision_border %g must be in (0, 1)", ErrInvalid, m.CollisionBorder)
	case m.Speed <= 0:
		return fmt.Errorf("%w: speed %g must be positive", ErrInvalid, m.Speed)
	case m.Speed+m.CollisionBorder >= 1:
		return fmt.Errorf("%w: speed %g plus collision_border %g must stay below one cell", ErrInvalid, m.Speed, m.CollisionBorder)
	case m.LookSpeed <= 0:
		return fmt.Errorf("%w: look_speed %g must be positive", ErrInvalid, m.LookSpeed)
	case c.Rays.Count < 0:
		return fmt.Errorf("%w: rays.count %d must not be negative", ErrInvalid, c.Rays.Count)
	case c.Rays.Length < 0:
		return fmt.Errorf("%w: rays.length %g must not be negative", ErrInvalid, c.Rays.Length)
	case c.Input.HoldMS <= 0:
		return fmt.Errorf("%w: input.hold_ms %d must be positive", ErrInvalid, c.Input.HoldMS)
	}
	return nil
}

// TurnStep returns the radians turned per frame of held turning.
func (c EngineConfig) TurnStep() float64 {
	return math.Pi / c.Movement.LookSpeed
}

// Tuning converts the movement section into engine tuning.
func (c EngineConfig) Tuning() engine.Tuning {
	return engine.Tuning{
		Speed:    c.Movement.Speed,
		TurnStep: c.TurnStep(),
		Border:   c.Movement.CollisionBorder,
	}
}
