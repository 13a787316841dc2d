package game

import (
	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/physics"
)

// Visual characters for rendering
const (
	CatGlyph     = 'ᓚ'
	WallChar     = '█'
	ObstacleChar = '▓'
	CloudChar    = '░'
)

var (
	wallStyle     = physics.Style{Fill: WallChar, Color: core.ColorDarkGray}
	playerStyle   = physics.Style{Fill: CatGlyph, Color: core.ColorOrange}
	obstacleStyle = physics.Style{Fill: ObstacleChar, Color: core.ColorBrightWhite}
)

// scene is the content of a freshly bootstrapped world.
type scene struct {
	world      *physics.World
	player     *physics.Body
	boundaries []*physics.Body
}

// bootstrap builds a world with the ceiling, left wall, floor and a player
// centered in the viewport.
func bootstrap(cfg config.SkycatConfig) scene {
	world := physics.NewWorld(physics.Config{
		TickRate:   cfg.Physics.TickRate,
		Gravity:    cfg.Physics.Gravity,
		ForceScale: cfg.Physics.ForceScale,
	})

	w, h := cfg.World.Width, cfg.World.Height
	t := cfg.Boundaries.Thickness

	top := world.NewRect(physics.RectSpec{
		Kind:   physics.Static,
		Center: physics.Vec{X: w / 2, Y: t / 2},
		Width:  w,
		Height: t,
		Style:  wallStyle,
	})
	left := world.NewRect(physics.RectSpec{
		Kind:   physics.Static,
		Center: physics.Vec{X: cfg.Boundaries.WallX, Y: h / 2},
		Width:  cfg.Boundaries.WallWidth,
		Height: h,
		Style:  wallStyle,
	})
	// The floor is twice as wide as the viewport so the player never slides off it.
	bottom := world.NewRect(physics.RectSpec{
		Kind:   physics.Static,
		Center: physics.Vec{X: w / 2, Y: h - t/2},
		Width:  2 * w,
		Height: t,
		Style:  wallStyle,
	})

	player := world.NewRect(physics.RectSpec{
		Kind:          physics.Dynamic,
		Center:        physics.Vec{X: w / 2, Y: h / 2},
		Width:         cfg.Player.Width,
		Height:        cfg.Player.Height,
		Mass:          cfg.Player.Mass,
		Friction:      0,
		FixedRotation: true,
		Style:         playerStyle,
	})

	boundaries := []*physics.Body{top, left, bottom}
	world.Add(boundaries...)
	world.Add(player)

	return scene{world: world, player: player, boundaries: boundaries}
}
