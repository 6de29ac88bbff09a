package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
// Values are tuned for 200 frames per second.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Movement: MovementConfig{
			Speed:           0.025,
			LookSpeed:       200,
			CollisionBorder: 0.25,
		},
		Rays: RaysConfig{
			Enabled: true,
			Count:   50,
			Length:  100.0 * 13 / 300,
		},
		Input: InputConfig{
			HoldMS: 180,
		},
	}
}
