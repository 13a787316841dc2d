// Package config provides YAML-based configuration loading and difficulty
// presets for skycat.
package config

import (
	"fmt"
	"time"
)

// SkycatConfig contains every tunable of the game.
type SkycatConfig struct {
	World      WorldConfig     `yaml:"world"`
	Boundaries BoundaryConfig  `yaml:"boundaries"`
	Physics    PhysicsConfig   `yaml:"physics"`
	Player     PlayerConfig    `yaml:"player"`
	Obstacles  ObstacleConfig  `yaml:"obstacles"`
	Corrector  CorrectorConfig `yaml:"corrector"`
	Controls   ControlsConfig  `yaml:"controls"`
	Score      ScoreConfig     `yaml:"score"`
}

// WorldConfig is the simulated viewport, in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BoundaryConfig places the ceiling, left wall and floor.
type BoundaryConfig struct {
	Thickness float64 `yaml:"thickness"`  // Ceiling and floor thickness
	WallX     float64 `yaml:"wall_x"`     // Center x of the left wall
	WallWidth float64 `yaml:"wall_width"` // Left wall thickness
}

// PhysicsConfig configures the engine clock and forces.
type PhysicsConfig struct {
	TickRate   int     `yaml:"tick_rate"`   // Steps per second
	Gravity    float64 `yaml:"gravity"`     // Units per second squared
	ForceScale float64 `yaml:"force_scale"` // Impulse units to engine force units
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// ObstacleConfig defines obstacle spawning and scrolling.
type ObstacleConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnOffset   float64       `yaml:"spawn_offset"` // Distance right of the viewport edge
	Step          float64       `yaml:"step"`         // Leftward travel per physics step
	RetireX       float64       `yaml:"retire_x"`     // Obstacles left of this x are removed
	Lanes         []Lane        `yaml:"lanes"`
}

// Lane is a vertical spawn position derived from the world height:
// y = height/Divisor - Inset.
type Lane struct {
	Divisor float64 `yaml:"divisor"`
	Inset   float64 `yaml:"inset"`
}

// Y returns the lane's y-coordinate for a world of the given height.
func (l Lane) Y(height float64) float64 {
	return height/l.Divisor - l.Inset
}

// CorrectorConfig tunes the per-spawn player correction.
type CorrectorConfig struct {
	Damping       float64 `yaml:"damping"`        // vx is divided by this each spawn tick
	Nudge         float64 `yaml:"nudge"`          // Rightward velocity applied when too far left
	ReturnDivisor float64 `yaml:"return_divisor"` // Nudge when x < world height / ReturnDivisor
}

// ControlsConfig defines the two jump impulses and their throttle window.
type ControlsConfig struct {
	Throttle      time.Duration `yaml:"throttle"`
	LightImpulse  float64       `yaml:"light_impulse"`  // Negative is upward
	StrongImpulse float64       `yaml:"strong_impulse"` // Negative is upward
}

// ScoreConfig defines how often the score increments.
type ScoreConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// Validate reports the first setting that would make the game unplayable.
func (c SkycatConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Physics.TickRate <= 0:
		return fmt.Errorf("config: physics.tick_rate must be positive, got %d", c.Physics.TickRate)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	case c.Player.Mass <= 0:
		return fmt.Errorf("config: player.mass must be positive, got %g", c.Player.Mass)
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return fmt.Errorf("config: obstacle size must be positive, got %gx%g", c.Obstacles.Width, c.Obstacles.Height)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("config: obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval)
	case len(c.Obstacles.Lanes) == 0:
		return fmt.Errorf("config: obstacles.lanes must not be empty")
	case c.Corrector.Damping == 0:
		return fmt.Errorf("config: corrector.damping must not be zero")
	case c.Corrector.ReturnDivisor == 0:
		return fmt.Errorf("config: corrector.return_divisor must not be zero")
	case c.Controls.Throttle < 0:
		return fmt.Errorf("config: controls.throttle must not be negative, got %v", c.Controls.Throttle)
	case c.Score.Interval <= 0:
		return fmt.Errorf("config: score.interval must be positive, got %v", c.Score.Interval)
	}
	for i, l := range c.Obstacles.Lanes {
		if l.Divisor <= 0 {
			return fmt.Errorf("config: obstacles.lanes[%d].divisor must be positive, got %g", i, l.Divisor)
		}
	}
	return nil
}
