package game

import (
	"github.com/vovakirdan/skycat/internal/physics"
)

// Sweeper advances and retires obstacles once per physics step. It owns the
// live obstacle collection, which is kept in spawn order and always matches
// the set of obstacle bodies in the world.
type Sweeper struct {
	world   *physics.World
	step    float64
	retireX float64
	live    []*Obstacle
	retired int
}

// NewSweeper creates an empty collection bound to world.
func NewSweeper(world *physics.World, step, retireX float64) *Sweeper {
	return &Sweeper{
		world:   world,
		step:    step,
		retireX: retireX,
		live:    make([]*Obstacle, 0, 16),
	}
}

// Track appends a spawned obstacle. Its body must already be in the world.
func (sw *Sweeper) Track(o *Obstacle) {
	sw.live = append(sw.live, o)
}

// Live returns the live obstacles, oldest first. The slice must not be modified.
func (sw *Sweeper) Live() []*Obstacle {
	return sw.live
}

// Retired returns how many obstacles have been swept out.
func (sw *Sweeper) Retired() int {
	return sw.retired
}

// Sweep removes every obstacle left of the retire line from the world and the
// collection, and keeps the rest moving left at exactly step units per step.
// Returns the obstacles that were retired.
func (sw *Sweeper) Sweep() []*Obstacle {
	var gone []*Obstacle
	valid := sw.live[:0]
	for _, o := range sw.live {
		if o.Body.Position().X < sw.retireX {
			sw.world.Remove(o.Body)
			gone = append(gone, o)
			continue
		}
		o.Body.SetVelocity(physics.Vec{X: -sw.step})
		valid = append(valid, o)
	}
	// Drop references held by the tail of the old slice.
	for i := len(valid); i < len(sw.live); i++ {
		sw.live[i] = nil
	}
	sw.live = valid
	sw.retired += len(gone)
	return gone
}

// Clear forgets every obstacle without touching the world.
func (sw *Sweeper) Clear() {
	sw.live = sw.live[:0]
}
