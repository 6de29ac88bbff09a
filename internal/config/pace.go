package config

import "fmt"

// Pace is a named movement preset.
type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// Paces lists the presets in display order.
var Paces = []Pace{PaceSlow, PaceNormal, PaceFast}

// paceFactor returns the multiplier applied to movement and turn rate.
func paceFactor(p Pace) (float64, bool) {
	switch p {
	case PaceSlow:
		return 0.5, true
	case PaceNormal, "":
		return 1, true
	case PaceFast:
		return 2, true
	default:
		return 0, false
	}
}

// ParsePace converts a flag value to a Pace.
func ParsePace(s string) (Pace, error) {
	p := Pace(s)
	if _, ok := paceFactor(p); !ok {
		return "", fmt.Errorf("config: unknown pace %q (expected slow, normal or fast)", s)
	}
	return p, nil
}

// ApplyPace scales speed and turn rate of cfg by the preset and revalidates.
// Turn rate scales through look_speed, which is inversely proportional to it.
func ApplyPace(cfg *EngineConfig, p Pace) error {
	f, ok := paceFactor(p)
	if !ok {
		return fmt.Errorf("config: unknown pace %q", p)
	}
	cfg.Movement.Speed *= f
	cfg.Movement.LookSpeed /= f
	return cfg.Validate()
}
