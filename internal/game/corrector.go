package game

import (
	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/physics"
)

// Corrector keeps the player drifting back toward the middle of the
// playground and detects the death condition.
type Corrector struct {
	cfg       config.CorrectorConfig
	threshold float64 // Nudge when the player's x is below this
}

// NewCorrector creates a corrector for a world of the given height.
// The return threshold is derived from the height, not the width.
func NewCorrector(cfg config.CorrectorConfig, worldHeight float64) *Corrector {
	return &Corrector{
		cfg:       cfg,
		threshold: worldHeight / cfg.ReturnDivisor,
	}
}

// Threshold returns the x below which the player is nudged rightward.
func (c *Corrector) Threshold() float64 {
	return c.threshold
}

// Correct damps the player's horizontal velocity, nudges it rightward when it
// sits left of the threshold, and reports whether it has crossed x < 0.
func (c *Corrector) Correct(player *physics.Body) (dead bool) {
	v := player.Velocity()
	player.SetVelocity(physics.Vec{X: v.X / c.cfg.Damping, Y: v.Y})

	if player.Position().X < c.threshold {
		player.SetVelocity(physics.Vec{X: c.cfg.Nudge, Y: 0})
	}

	return player.Position().X < 0
}
