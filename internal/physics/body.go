package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/skycat/internal/core"
)

// Kind selects how the engine treats a body.
type Kind int

const (
	Dynamic   Kind = iota // Integrated under gravity and forces
	Static                // Never moves
	Kinematic             // Moved only by its own velocity, pushes dynamic bodies
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	default:
		return "unknown"
	}
}

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v*f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

func (v Vec) cp() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) Vec {
	return Vec{X: v.X, Y: v.Y}
}

// Style describes how a renderer should draw a body.
type Style struct {
	Fill   rune
	Color  core.Color
	Hidden bool
}

// RectSpec describes a rectangular body.
type RectSpec struct {
	Kind          Kind
	Center        Vec
	Width, Height float64
	Mass          float64 // Dynamic bodies only
	Friction      float64
	FixedRotation bool // Dynamic bodies only: infinite moment of inertia
	Style         Style
}

// Body is a rectangular rigid body owned by a World.
type Body struct {
	world *World
	body  *cp.Body
	shape *cp.Shape
	kind  Kind
	w, h  float64
	added bool

	Style Style
}

// Kind returns the body kind.
func (b *Body) Kind() Kind {
	return b.kind
}

// Size returns the body's width and height.
func (b *Body) Size() (float64, float64) {
	return b.w, b.h
}

// Bounds returns the axis-aligned extent as min and max corners.
func (b *Body) Bounds() (Vec, Vec) {
	p := b.Position()
	half := Vec{X: b.w / 2, Y: b.h / 2}
	return Vec{X: p.X - half.X, Y: p.Y - half.Y}, p.Add(half)
}

// Position returns the body's center.
func (b *Body) Position() Vec {
	return fromCP(b.body.Position())
}

// SetPosition teleports the body's center. A static body already in the
// world has its shape taken out and put back so collisions use the new
// position.
func (b *Body) SetPosition(p Vec) {
	if b.kind != Static || !b.added {
		b.body.SetPosition(p.cp())
		return
	}
	b.world.space.RemoveShape(b.shape)
	b.body.SetPosition(p.cp())
	b.world.space.AddShape(b.shape)
}

// Velocity returns the linear velocity in units per step.
func (b *Body) Velocity() Vec {
	return fromCP(b.body.Velocity()).Scale(b.world.dt)
}

// SetVelocity sets the linear velocity in units per step.
func (b *Body) SetVelocity(v Vec) {
	perSecond := v.Scale(1 / b.world.dt)
	b.body.SetVelocity(perSecond.X, perSecond.Y)
}

// AngularVelocity returns the angular velocity in radians per step.
func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity() * b.world.dt
}

// SetAngularVelocity sets the angular velocity in radians per step.
func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w / b.world.dt)
}

// ApplyForce applies force at a world point for the next step only.
func (b *Body) ApplyForce(point, force Vec) {
	b.body.ApplyForceAtWorldPoint(force.Scale(b.world.forceScale).cp(), point.cp())
}
