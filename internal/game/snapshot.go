package game

import (
	"strconv"

	"github.com/vovakirdan/skycat/internal/physics"
)

// BodySnapshot is the kinematic state of a body at one instant.
type BodySnapshot struct {
	Position        physics.Vec
	Velocity        physics.Vec // Units per step
	AngularVelocity float64     // Radians per step
}

// ObstacleSnapshot describes one live obstacle.
type ObstacleSnapshot struct {
	ID       int
	Lane     int
	Position physics.Vec
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	State     State
	Score     int
	Steps     int
	Spawned   int
	Retired   int
	Player    BodySnapshot
	Obstacles []ObstacleSnapshot
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Score:   s.score.Score(),
		Steps:   s.world.Steps(),
		Spawned: s.spawner.Spawned(),
		Retired: s.sweeper.Retired(),
		Player: BodySnapshot{
			Position:        s.player.Position(),
			Velocity:        s.player.Velocity(),
			AngularVelocity: s.player.AngularVelocity(),
		},
	}
	live := s.sweeper.Live()
	snap.Obstacles = make([]ObstacleSnapshot, len(live))
	for i, o := range live {
		snap.Obstacles[i] = ObstacleSnapshot{ID: o.ID, Lane: o.Lane, Position: o.Body.Position()}
	}
	return snap
}

func formatSize(w, h float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64) + "x" + strconv.FormatFloat(h, 'g', -1, 64)
}
