// Package physics adapts the Chipmunk2D engine (github.com/jakecoffman/cp)
// to the small rigid-body surface the game needs: rectangular bodies, a
// world that bodies are added to and removed from, a fixed-step Step with
// pre-step hooks, and force application.
//
// Velocities crossing this API are expressed in world units per step, not
// per second, so game code can reason about "1 unit per step" directly.
// Forces are given in per-millisecond engine units and scaled by
// Config.ForceScale before reaching cp.
package physics

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// Config controls the simulation clock and global forces.
type Config struct {
	TickRate   int     // Steps per second
	Gravity    float64 // Downward acceleration in units/s^2 (y grows downward)
	ForceScale float64 // Multiplier from impulse units to cp force units
}

// DefaultConfig mirrors a 60 Hz runner with 0.001 units/ms^2 gravity.
func DefaultConfig() Config {
	return Config{
		TickRate:   60,
		Gravity:    1000,
		ForceScale: 1e6,
	}
}

// Hook is a callback run around each simulation step.
type Hook func()

// World owns a cp.Space and the bodies currently added to it.
type World struct {
	space      *cp.Space
	tickRate   int
	dt         float64
	forceScale float64
	bodies     []*Body
	before     []*hookEntry
	steps      int
	cleared    bool
}

type hookEntry struct {
	fn     Hook
	active bool
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) *World {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}
	if cfg.ForceScale == 0 {
		cfg.ForceScale = DefaultConfig().ForceScale
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	return &World{
		space:      space,
		tickRate:   cfg.TickRate,
		dt:         1.0 / float64(cfg.TickRate),
		forceScale: cfg.ForceScale,
	}
}

// TimeStep returns the fixed step duration.
func (w *World) TimeStep() time.Duration {
	return time.Second / time.Duration(w.tickRate)
}

// Steps returns the number of completed steps.
func (w *World) Steps() int {
	return w.steps
}

// NewRect creates a rectangular body centered at spec.Center. The body is
// not part of the world until Add is called.
func (w *World) NewRect(spec RectSpec) *Body {
	var body *cp.Body
	switch spec.Kind {
	case Static:
		body = cp.NewStaticBody()
	case Kinematic:
		body = cp.NewKinematicBody()
	default:
		mass := spec.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, spec.Width, spec.Height)
		if spec.FixedRotation {
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: spec.Center.X, Y: spec.Center.Y})

	shape := cp.NewBox(body, spec.Width, spec.Height, 0)
	shape.SetFriction(spec.Friction)

	b := &Body{
		world: w,
		body:  body,
		shape: shape,
		kind:  spec.Kind,
		w:     spec.Width,
		h:     spec.Height,
		Style: spec.Style,
	}
	body.UserData = b
	return b
}

// Add inserts bodies into the world. Bodies already present are skipped.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.added {
			continue
		}
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		b.added = true
		w.bodies = append(w.bodies, b)
	}
}

// Remove takes bodies out of the world. Bodies not present are skipped.
func (w *World) Remove(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || !b.added {
			continue
		}
		w.space.RemoveShape(b.shape)
		w.space.RemoveBody(b.body)
		b.added = false
		w.forget(b)
	}
}

// Contains reports whether b is currently part of the world.
func (w *World) Contains(b *Body) bool {
	return b != nil && b.added && b.world == w
}

// Bodies returns the bodies in the world in insertion order.
// The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of bodies in the world.
func (w *World) Len() int {
	return len(w.bodies)
}

// OnBeforeStep registers a hook run at the start of every Step, before the
// engine integrates. Hooks run in registration order. The returned function
// unregisters the hook.
func (w *World) OnBeforeStep(fn Hook) (unregister func()) {
	e := &hookEntry{fn: fn, active: true}
	w.before = append(w.before, e)
	return func() { e.active = false }
}

// Step runs the pre-step hooks and advances the simulation by one step.
func (w *World) Step() {
	if w.cleared {
		return
	}
	for _, e := range w.before {
		if e.active {
			e.fn()
		}
	}
	w.space.Step(w.dt)
	w.steps++
}

// Clear removes every body and hook. The world cannot be stepped afterwards.
func (w *World) Clear() {
	for len(w.bodies) > 0 {
		w.Remove(w.bodies[len(w.bodies)-1])
	}
	w.before = nil
	w.cleared = true
}

// Cleared reports whether Clear has been called.
func (w *World) Cleared() bool {
	return w.cleared
}

func (w *World) forget(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}
