package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/skycat.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/skycat.yaml and is used when that file cannot be parsed.
func DefaultConfig() SkycatConfig {
	return SkycatConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Boundaries: BoundaryConfig{
			Thickness: 20,
			WallX:     -50,
			WallWidth: 5,
		},
		Physics: PhysicsConfig{
			TickRate:   60,
			Gravity:    1000,
			ForceScale: 1e6,
		},
		Player: PlayerConfig{
			Width:  10,
			Height: 20,
			Mass:   0.2,
		},
		Obstacles: ObstacleConfig{
			Width:         100,
			Height:        20,
			SpawnInterval: 700 * time.Millisecond,
			SpawnOffset:   100,
			Step:          1,
			RetireX:       -50,
			Lanes:         DefaultLanes(),
		},
		Corrector: CorrectorConfig{
			Damping:       10,
			Nudge:         1,
			ReturnDivisor: 2,
		},
		Controls: ControlsConfig{
			Throttle:      500 * time.Millisecond,
			LightImpulse:  -0.006,
			StrongImpulse: -0.008,
		},
		Score: ScoreConfig{
			Interval: time.Second,
		},
	}
}

// DefaultLanes returns {H-25, H-25, H/3, H/2, H/1.5}. The floor lane appears
// twice, so it is picked 40% of the time.
func DefaultLanes() []Lane {
	return []Lane{
		{Divisor: 1, Inset: 25},
		{Divisor: 1, Inset: 25},
		{Divisor: 3},
		{Divisor: 2},
		{Divisor: 1.5},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
