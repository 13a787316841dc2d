package game

import (
	"math/rand"

	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/physics"
)

// Obstacle is a live cloud scrolling from right to left.
type Obstacle struct {
	ID   int           // Spawn sequence number, starting at 1
	Lane int           // Index into the lane table
	Body *physics.Body // Kinematic body in the session world
}

// Spawner creates obstacles off-screen to the right at a random lane.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.ObstacleConfig
	width   float64
	height  float64
	lanes   []float64 // Lane y-coordinates for the world height
	spawned int
}

// NewSpawner creates a spawner for a world of the given size.
func NewSpawner(seed int64, cfg config.ObstacleConfig, width, height float64) *Spawner {
	lanes := make([]float64, len(cfg.Lanes))
	for i, l := range cfg.Lanes {
		lanes[i] = l.Y(height)
	}
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg,
		width:  width,
		height: height,
		lanes:  lanes,
	}
}

// Lanes returns the lane y-coordinates. The slice must not be modified.
func (sp *Spawner) Lanes() []float64 {
	return sp.lanes
}

// Spawned returns how many obstacles have been created.
func (sp *Spawner) Spawned() int {
	return sp.spawned
}

// PickLane returns a uniformly random index into the lane table.
func (sp *Spawner) PickLane() int {
	return sp.rng.Intn(len(sp.lanes))
}

// Spawn creates an obstacle in the given world, adds it to the world and
// launches it leftward at the sweep speed.
func (sp *Spawner) Spawn(world *physics.World) *Obstacle {
	lane := sp.PickLane()
	body := world.NewRect(physics.RectSpec{
		Kind:   physics.Kinematic,
		Center: physics.Vec{X: sp.width + sp.cfg.SpawnOffset, Y: sp.lanes[lane]},
		Width:  sp.cfg.Width,
		Height: sp.cfg.Height,
		Style:  obstacleStyle,
	})
	world.Add(body)
	body.SetVelocity(physics.Vec{X: -sp.cfg.Step})

	sp.spawned++
	return &Obstacle{ID: sp.spawned, Lane: lane, Body: body}
}
