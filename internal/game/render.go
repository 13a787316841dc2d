package game

import (
	"math"

	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/physics"
)

// Renderer draws a physics world into a screen area, scaling world units to
// cells. Behind the bodies it paints a fixed cloud layer, cached per area size.
type Renderer struct {
	world  *physics.World
	width  float64 // World units mapped to the area width
	height float64 // World units mapped to the area height

	clouds []bool
	cloudW int
	cloudH int
	closed bool
}

// NewRenderer binds a renderer to world, whose viewport spans width x height units.
func NewRenderer(world *physics.World, width, height float64) *Renderer {
	return &Renderer{world: world, width: width, height: height}
}

// Close releases the cloud layer. Draw does nothing afterwards.
func (r *Renderer) Close() {
	r.closed = true
	r.clouds = nil
	r.cloudW, r.cloudH = 0, 0
}

// Closed reports whether Close has been called.
func (r *Renderer) Closed() bool {
	return r.closed
}

// Draw paints the background and every visible body into area of dst.
// Bodies are drawn in world order, so later bodies cover earlier ones.
func (r *Renderer) Draw(dst *core.Screen, area core.Rect) {
	if r.closed || area.Empty() {
		return
	}

	r.ensureClouds(area.W, area.H)
	for y := 0; y < area.H; y++ {
		for x := 0; x < area.W; x++ {
			if r.clouds[y*area.W+x] {
				dst.SetCell(area.X+x, area.Y+y, CloudChar, core.ColorWhite)
			} else {
				dst.SetCell(area.X+x, area.Y+y, ' ', core.ColorDefault)
			}
		}
	}

	for _, b := range r.world.Bodies() {
		if b.Style.Hidden {
			continue
		}
		cells := clip(r.Project(b, area), area)
		if cells.Empty() {
			continue
		}
		dst.DrawRect(cells, b.Style.Fill, b.Style.Color)
	}
}

// Project maps a body's bounds to screen cells inside area's coordinate
// system. Every body covers at least one cell. The result is not clipped.
func (r *Renderer) Project(b *physics.Body, area core.Rect) core.Rect {
	sx := float64(area.W) / r.width
	sy := float64(area.H) / r.height
	lo, hi := b.Bounds()

	x0 := int(math.Floor(lo.X * sx))
	x1 := int(math.Ceil(hi.X * sx))
	y0 := int(math.Floor(lo.Y * sy))
	y1 := int(math.Ceil(hi.Y * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(area.X+x0, area.Y+y0, x1-x0, y1-y0)
}

// ensureClouds rebuilds the cloud layer when the area size changes.
func (r *Renderer) ensureClouds(w, h int) {
	if r.clouds != nil && r.cloudW == w && r.cloudH == h {
		return
	}
	r.cloudW, r.cloudH = w, h
	r.clouds = make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.clouds[y*w+x] = isCloud(x, y)
		}
	}
}

// isCloud is a fixed hash pattern of short horizontal puffs.
func isCloud(x, y int) bool {
	h := uint32(x/5)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return h%13 == 0
}

func clip(r, area core.Rect) core.Rect {
	x0 := core.Max(r.X, area.X)
	y0 := core.Max(r.Y, area.Y)
	x1 := core.Min(r.Right(), area.Right())
	y1 := core.Min(r.Bottom(), area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
