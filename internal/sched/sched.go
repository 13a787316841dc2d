// Package sched provides a single-threaded cooperative timer scheduler.
// Repeating timers fire only from inside Advance, in due-time order, on the
// caller's goroutine. The platform layer calls Advance from its own event
// loop, so timer callbacks never run concurrently with input handling or
// rendering and need no locking.
package sched

import (
	"sort"
	"time"
)

// Timer is a repeating callback registered with a Scheduler.
type Timer struct {
	name     string
	interval time.Duration
	next     time.Time
	fn       func()
	seq      uint64
	stopped  bool
	fired    int
}

// Name returns the label the timer was registered with.
func (t *Timer) Name() string {
	return t.name
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Fired returns how many times the callback has run.
func (t *Timer) Fired() int {
	return t.fired
}

// Stop cancels the timer. Returns false if it was already stopped.
// Safe to call on a nil timer and from inside any timer callback.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Scheduler owns a set of repeating timers and a virtual clock.
type Scheduler struct {
	now    time.Time
	timers []*Timer
	seq    uint64
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every registers fn to run every interval, first at Now()+interval.
// Panics on a non-positive interval, like time.NewTicker.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic("sched: non-positive interval for Every")
	}
	s.seq++
	t := &Timer{
		name:     name,
		interval: interval,
		next:     s.now.Add(interval),
		fn:       fn,
		seq:      s.seq,
	}
	s.timers = append(s.timers, t)
	return t
}

// Active returns the number of timers that have not been stopped.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// StopAll cancels every registered timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.stopped = true
	}
	s.timers = s.timers[:0]
}

// Advance moves the clock forward to `to`, running every callback that falls
// due on the way. Occurrences run in due-time order; timers due at the same
// instant run in registration order. Returns the number of callbacks run.
// A `to` earlier than Now() is ignored.
func (s *Scheduler) Advance(to time.Time) int {
	if to.Before(s.now) {
		return 0
	}

	ran := 0
	for {
		t := s.nextDue(to)
		if t == nil {
			break
		}
		s.now = t.next
		t.next = t.next.Add(t.interval)
		t.fired++
		t.fn()
		ran++
	}

	s.now = to
	s.compact()
	return ran
}

// nextDue returns the active timer with the earliest due time not after
// limit, or nil.
func (s *Scheduler) nextDue(limit time.Time) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.stopped || t.next.After(limit) {
			continue
		}
		if best == nil || t.next.Before(best.next) || (t.next.Equal(best.next) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops stopped timers, keeping registration order.
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
}

// Pending returns the names of active timers sorted by next due time.
func (s *Scheduler) Pending() []string {
	active := make([]*Timer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.stopped {
			active = append(active, t)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].next.Before(active[j].next)
	})
	names := make([]string, len(active))
	for i, t := range active {
		names[i] = t.name
	}
	return names
}
