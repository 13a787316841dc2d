package game

import (
	"time"

	"github.com/vovakirdan/skycat/internal/sched"
)

// ScoreTicker counts whole intervals spent running.
type ScoreTicker struct {
	score int
	timer *sched.Timer
}

// Start registers the repeating tick. Starting twice is a no-op.
func (st *ScoreTicker) Start(s *sched.Scheduler, interval time.Duration) {
	if st.timer.Active() {
		return
	}
	st.timer = s.Every("score", interval, func() { st.score++ })
}

// Stop cancels the tick. The score is kept.
func (st *ScoreTicker) Stop() {
	st.timer.Stop()
}

// Running reports whether the tick is registered.
func (st *ScoreTicker) Running() bool {
	return st.timer.Active()
}

// Score returns the current count.
func (st *ScoreTicker) Score() int {
	return st.score
}
