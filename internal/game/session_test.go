package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/physics"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func at(d time.Duration) time.Time {
	return epoch.Add(d)
}

func newTestSession(t *testing.T, mutate func(*config.SkycatConfig)) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, Options{Seed: 42, Start: epoch})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func startTestSession(t *testing.T, mutate func(*config.SkycatConfig)) *Session {
	t.Helper()
	s := newTestSession(t, mutate)
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	return s
}

func TestNewBootstrapsWorld(t *testing.T) {
	s := newTestSession(t, nil)

	if s.State() != NotStarted {
		t.Errorf("State() = %v, expected NotStarted", s.State())
	}
	if s.World().Len() != 4 {
		t.Errorf("world has %d bodies, expected 3 boundaries + player", s.World().Len())
	}
	if got := s.clock.Pending(); len(got) != 0 {
		t.Errorf("timers before Start = %v, expected none", got)
	}

	tests := []struct {
		name   string
		body   *physics.Body
		center physics.Vec
		w, h   float64
	}{
		{"top", s.Boundaries()[0], physics.Vec{X: 400, Y: 10}, 800, 20},
		{"left", s.Boundaries()[1], physics.Vec{X: -50, Y: 200}, 5, 400},
		{"bottom", s.Boundaries()[2], physics.Vec{X: 400, Y: 390}, 1600, 20},
		{"player", s.Player(), physics.Vec{X: 400, Y: 200}, 10, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if p := tc.body.Position(); p != tc.center {
				t.Errorf("center = %v, expected %v", p, tc.center)
			}
			if w, h := tc.body.Size(); w != tc.w || h != tc.h {
				t.Errorf("size = %gx%g, expected %gx%g", w, h, tc.w, tc.h)
			}
		})
	}

	for _, b := range s.Boundaries() {
		if b.Kind() != physics.Static {
			t.Errorf("boundary kind = %v, expected static", b.Kind())
		}
	}
	if s.Player().Kind() != physics.Dynamic {
		t.Errorf("player kind = %v, expected dynamic", s.Player().Kind())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.Lanes = nil
	if _, err := New(cfg, Options{Start: epoch}); err == nil {
		t.Error("New() should reject a config without lanes")
	}
}

func TestStartTransitions(t *testing.T) {
	s := newTestSession(t, nil)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.State() != Running {
		t.Errorf("State() = %v, expected Running", s.State())
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() = %v, expected ErrAlreadyStarted", err)
	}

	expected := map[string]bool{"physics": true, "spawn": true, "score": true}
	pending := s.clock.Pending()
	if len(pending) != len(expected) {
		t.Fatalf("Pending() = %v, expected physics, spawn and score", pending)
	}
	for _, name := range pending {
		if !expected[name] {
			t.Errorf("unexpected timer %q", name)
		}
	}
}

func TestScenarioFirstSpawnTickWithoutInput(t *testing.T) {
	s := startTestSession(t, func(c *config.SkycatConfig) {
		c.World.Width = 800
		c.World.Height = 600
	})

	if p := s.Player().Position(); p.X != 400 || p.Y != 300 {
		t.Fatalf("player spawned at %v, expected (400, 300)", p)
	}

	s.Advance(at(700 * time.Millisecond))

	snap := s.Snapshot()
	if snap.Spawned != 1 {
		t.Fatalf("Spawned = %d after one spawn interval, expected 1", snap.Spawned)
	}
	// 400 < 600/2 is false: no nudge, so the fall continues untouched.
	if !near(snap.Player.Velocity.X, 0) {
		t.Errorf("vx = %f, expected 0", snap.Player.Velocity.X)
	}
	if snap.Player.Velocity.Y <= 0 {
		t.Errorf("vy = %f, expected the player to still be falling", snap.Player.Velocity.Y)
	}
	if !near(snap.Player.Position.X, 400) {
		t.Errorf("x = %f, expected 400", snap.Player.Position.X)
	}
	if snap.State != Running {
		t.Errorf("State = %v, expected Running", snap.State)
	}
}

func TestSpawnedObstaclesUseLaneTable(t *testing.T) {
	s := startTestSession(t, nil)
	lanes := s.Lanes()

	for i := 0; i < 50; i++ {
		s.spawnTick()
	}

	for _, o := range s.Obstacles() {
		p := o.Body.Position()
		if p.X != 900 {
			t.Errorf("obstacle %d spawned at x=%f, expected 900", o.ID, p.X)
		}
		if p.Y != lanes[o.Lane] {
			t.Errorf("obstacle %d at y=%f, expected lane %d (%f)", o.ID, p.Y, o.Lane, lanes[o.Lane])
		}
		if o.Body.Kind() != physics.Kinematic {
			t.Errorf("obstacle kind = %v, expected kinematic", o.Body.Kind())
		}
		if !near(o.Body.Velocity().X, -1) {
			t.Errorf("obstacle launched at vx=%f, expected -1", o.Body.Velocity().X)
		}
	}
}

func TestObstacleMovesOneUnitPerStepUntilRetired(t *testing.T) {
	s := startTestSession(t, nil)
	s.spawnTick()
	o := s.Obstacles()[0]
	world := s.World()

	prev := o.Body.Position().X
	steps := 0
	for o.Body.Position().X >= -50 {
		world.Step()
		steps++
		x := o.Body.Position().X
		if !near(prev-x, 1) {
			t.Fatalf("step %d: moved %f, expected exactly 1", steps, prev-x)
		}
		prev = x
		if steps > 2000 {
			t.Fatal("obstacle never crossed the retire line")
		}
	}

	// Crossed during the last step's integration; the next sweep retires it.
	if steps != 951 {
		t.Errorf("crossed after %d steps, expected 951 (900 -> -51)", steps)
	}
	if !world.Contains(o.Body) || len(s.Obstacles()) != 1 {
		t.Fatal("obstacle should still be live right after crossing")
	}

	world.Step()

	if world.Contains(o.Body) {
		t.Error("obstacle should be removed from the world on the next sweep")
	}
	if len(s.Obstacles()) != 0 {
		t.Error("obstacle should be removed from the collection in the same sweep")
	}
	if s.Snapshot().Retired != 1 {
		t.Errorf("Retired = %d, expected 1", s.Snapshot().Retired)
	}
}

func TestCollectionMatchesWorld(t *testing.T) {
	s := startTestSession(t, nil)

	for ms := 100; ms <= 40_000; ms += 100 {
		s.Advance(at(time.Duration(ms) * time.Millisecond))

		live := s.Obstacles()
		if got, expected := s.World().Len(), 4+len(live); got != expected {
			t.Fatalf("t=%dms: world has %d bodies, expected %d", ms, got, expected)
		}
		for i, o := range live {
			if !s.World().Contains(o.Body) {
				t.Fatalf("t=%dms: live obstacle %d missing from world", ms, o.ID)
			}
			if i > 0 && live[i-1].ID >= o.ID {
				t.Fatalf("t=%dms: collection out of spawn order", ms)
			}
		}
	}
}

func TestPlayerAngularVelocityZeroAfterEveryStep(t *testing.T) {
	s := startTestSession(t, nil)
	world := s.World()

	for i := 0; i < 1200; i++ {
		if i%42 == 0 {
			s.spawnTick()
		}
		if i%30 == 0 {
			s.Player().ApplyForce(s.Player().Position().Add(physics.Vec{X: 5, Y: -10}), physics.Vec{X: 0.001, Y: -0.006})
		}
		world.Step()
		if w := s.Player().AngularVelocity(); w != 0 {
			t.Fatalf("step %d: angular velocity %f, expected 0", i, w)
		}
	}
}

func TestDeathStopsEverything(t *testing.T) {
	s := startTestSession(t, nil)
	s.Player().SetPosition(physics.Vec{X: -1, Y: 200})

	s.Advance(at(699 * time.Millisecond))
	if s.State() != Running {
		t.Fatalf("State() = %v before the first spawn tick, expected Running", s.State())
	}

	s.Advance(at(700 * time.Millisecond))
	if s.State() != Dead {
		t.Fatalf("State() = %v after spawn tick at x=-1, expected Dead", s.State())
	}

	frozen := s.Snapshot()
	s.Advance(at(10 * time.Second))
	after := s.Snapshot()

	if after.State != Dead {
		t.Errorf("State = %v, Dead should be permanent", after.State)
	}
	if after.Score != 0 {
		t.Errorf("Score = %d, should not increase while Dead", after.Score)
	}
	if after.Steps != frozen.Steps || after.Spawned != frozen.Spawned {
		t.Error("physics and spawning should stop on death")
	}
	if after.Player.Position != frozen.Player.Position {
		t.Error("scene should freeze on death")
	}
	if s.clock.Active() != 0 {
		t.Errorf("%d timers still active after death", s.clock.Active())
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Start() after death = %v, expected ErrAlreadyStarted", err)
	}
	if s.Jump(at(11 * time.Second)) {
		t.Error("Jump should be ignored while Dead")
	}
}

func TestNoDeathAtZero(t *testing.T) {
	s := startTestSession(t, func(c *config.SkycatConfig) { c.Physics.Gravity = 0 })
	s.Player().SetPosition(physics.Vec{X: 0, Y: 200})

	s.Advance(at(700 * time.Millisecond))

	if s.State() != Running {
		t.Errorf("State() = %v at x=0, expected Running", s.State())
	}
	// x=0 is left of 400/2, so the player is nudged right.
	v := s.Player().Velocity()
	if !near(v.X, 1) || !near(v.Y, 0) {
		t.Errorf("velocity = %v, expected (1, 0)", v)
	}
}

func TestScoreTicksOncePerSecondWhileRunning(t *testing.T) {
	s := newTestSession(t, nil)

	s.Advance(at(5 * time.Second))
	if s.Score() != 0 {
		t.Fatalf("Score() = %d while NotStarted, expected 0", s.Score())
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	base := 5 * time.Second

	tests := []struct {
		elapsed  time.Duration
		expected int
	}{
		{999 * time.Millisecond, 0},
		{time.Second, 1},
		{1999 * time.Millisecond, 1},
		{2 * time.Second, 2},
		{5500 * time.Millisecond, 5},
	}
	for _, tc := range tests {
		s.Advance(at(base + tc.elapsed))
		if s.State() != Running {
			t.Fatalf("player died after %v", tc.elapsed)
		}
		if s.Score() != tc.expected {
			t.Errorf("after %v: Score() = %d, expected %d", tc.elapsed, s.Score(), tc.expected)
		}
	}
}

func TestJumpThrottle(t *testing.T) {
	s := startTestSession(t, nil)

	tests := []struct {
		name     string
		fire     func(time.Time) bool
		at       time.Duration
		expected bool
	}{
		{"first jump", s.Jump, 0, true},
		{"jump inside window", s.Jump, 100 * time.Millisecond, false},
		{"strong jump has its own window", s.StrongJump, 100 * time.Millisecond, true},
		{"strong jump inside window", s.StrongJump, 400 * time.Millisecond, false},
		{"jump at window end", s.Jump, 500 * time.Millisecond, true},
		{"jump right after", s.Jump, 501 * time.Millisecond, false},
		{"strong jump after window", s.StrongJump, 600 * time.Millisecond, true},
	}
	for _, tc := range tests {
		if got := tc.fire(at(tc.at)); got != tc.expected {
			t.Errorf("%s at %v: got %v, expected %v", tc.name, tc.at, got, tc.expected)
		}
	}

	if s.light.Applied() != 2 || s.light.Dropped() != 2 {
		t.Errorf("light applied/dropped = %d/%d, expected 2/2", s.light.Applied(), s.light.Dropped())
	}
}

func TestJumpPushesPlayerUp(t *testing.T) {
	tests := []struct {
		name  string
		fire  func(*Session, time.Time) bool
		force float64
	}{
		{"light", (*Session).Jump, -0.006},
		{"strong", (*Session).StrongJump, -0.008},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := startTestSession(t, func(c *config.SkycatConfig) { c.Physics.Gravity = 0 })

			if !tc.fire(s, at(0)) {
				t.Fatal("impulse should fire")
			}
			s.World().Step()

			// F/m scaled to cp units, integrated over one 1/60 s step.
			expected := tc.force / 0.2 * 1e6 / 3600
			if vy := s.Player().Velocity().Y; math.Abs(vy-expected) > 1e-6 {
				t.Errorf("vy = %f, expected %f", vy, expected)
			}
		})
	}
}

func TestJumpIgnoredBeforeStart(t *testing.T) {
	s := newTestSession(t, nil)
	if s.Jump(at(0)) || s.StrongJump(at(0)) {
		t.Error("impulses should be ignored while NotStarted")
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	// The dropped calls must not have consumed the throttle window.
	if !s.Jump(at(time.Millisecond)) {
		t.Error("first jump after Start should fire")
	}
}

func TestStop(t *testing.T) {
	s := newTestSession(t, nil)
	if err := s.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop() before Start = %v, expected ErrNotRunning", err)
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Advance(at(time.Second))
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	steps := s.World().Steps()
	s.Advance(at(5 * time.Second))

	if s.World().Steps() != steps || s.Score() != 1 {
		t.Error("Stop should cancel the physics runner and the score timer")
	}
	if err := s.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("second Stop() = %v, expected ErrNotRunning", err)
	}
}

func TestJumpAfterStop(t *testing.T) {
	tests := []struct {
		name string
		fire func(*Session) func(time.Time) bool
	}{
		{"jump", func(s *Session) func(time.Time) bool { return s.Jump }},
		{"strong jump", func(s *Session) func(time.Time) bool { return s.StrongJump }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := startTestSession(t, nil)
			if err := s.Stop(); err != nil {
				t.Fatalf("Stop() error: %v", err)
			}

			if tc.fire(s)(at(time.Second)) {
				t.Error("expected the impulse to be dropped after Stop")
			}
			if s.light.Applied() != 0 || s.strong.Applied() != 0 {
				t.Errorf("applied light/strong = %d/%d, expected 0/0", s.light.Applied(), s.strong.Applied())
			}
			if s.State() != Running {
				t.Errorf("State() = %v, expected Running", s.State())
			}
		})
	}
}

func TestCloseReleasesEverythingOnce(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Session)
	}{
		{"not started", func(*Session) {}},
		{"running", func(s *Session) {
			s.Start()
			s.Advance(at(3 * time.Second))
		}},
		{"dead", func(s *Session) {
			s.Start()
			s.Player().SetPosition(physics.Vec{X: -1, Y: 200})
			s.Advance(at(time.Second))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			tc.setup(s)

			if err := s.Close(); err != nil {
				t.Fatalf("Close() error: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("second Close() error: %v", err)
			}

			if !s.Closed() {
				t.Error("Closed() should report true")
			}
			if s.clock.Active() != 0 {
				t.Errorf("%d timers active after Close", s.clock.Active())
			}
			if s.World().Len() != 0 || !s.World().Cleared() {
				t.Error("world should be cleared")
			}
			if len(s.Obstacles()) != 0 {
				t.Error("collection should be empty")
			}
			if !s.renderer.Closed() {
				t.Error("renderer should be released")
			}
			if s.Advance(at(time.Hour)) != 0 {
				t.Error("Advance after Close should run nothing")
			}
			if err := s.Start(); !errors.Is(err, ErrClosed) {
				t.Errorf("Start() after Close = %v, expected ErrClosed", err)
			}
			if err := s.Stop(); !errors.Is(err, ErrClosed) {
				t.Errorf("Stop() after Close = %v, expected ErrClosed", err)
			}
		})
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() []int {
		s := startTestSession(t, nil)
		s.Advance(at(10 * time.Second))
		var lanes []int
		for _, o := range s.Obstacles() {
			lanes = append(lanes, o.Lane)
		}
		return lanes
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs produced %d and %d obstacles", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("lane %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{NotStarted, "NotStarted"},
		{Running, "Running"},
		{Dead, "Dead"},
		{State(9), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tc.state, got, tc.expected)
		}
	}
}
