package game

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/vovakirdan/skycat/internal/physics"
)

// Impulse is a throttled upward push on the player. Calls inside the
// throttle window are dropped, not queued.
type Impulse struct {
	name    string
	force   float64
	limiter *rate.Limiter
	applied int
	dropped int
}

// NewImpulse creates an impulse of the given vertical force, allowed at most
// once per window. A zero window disables throttling.
func NewImpulse(name string, force float64, window time.Duration) *Impulse {
	return &Impulse{
		name:    name,
		force:   force,
		limiter: rate.NewLimiter(rate.Every(window), 1),
	}
}

// Name returns the label given at construction.
func (i *Impulse) Name() string {
	return i.name
}

// Fire applies the force at the player's position if the throttle allows a
// call at now. Reports whether the force was applied.
func (i *Impulse) Fire(player *physics.Body, now time.Time) bool {
	if !i.limiter.AllowN(now, 1) {
		i.dropped++
		return false
	}
	player.ApplyForce(player.Position(), physics.Vec{X: 0, Y: i.force})
	i.applied++
	return true
}

// Applied returns how many calls took effect.
func (i *Impulse) Applied() int {
	return i.applied
}

// Dropped returns how many calls were throttled away.
func (i *Impulse) Dropped() int {
	return i.dropped
}
