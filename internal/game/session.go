// Package game implements the skycat session: a cat kept aloft by two jump
// impulses while clouds scroll in from the right and push it toward the left
// edge. A Session owns one physics world, the cooperative timers that drive
// it and the renderer bound to it; nothing is shared between sessions.
package game

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/physics"
	"github.com/vovakirdan/skycat/internal/sched"
)

// Lifecycle errors.
var (
	ErrAlreadyStarted = errors.New("game: session already started")
	ErrNotRunning     = errors.New("game: session is not running")
	ErrClosed         = errors.New("game: session closed")
)

// Options configures a new session.
type Options struct {
	Seed   int64       // Lane RNG seed
	Start  time.Time   // Initial clock; zero means time.Now()
	Logger *log.Logger // Nil discards log output
}

// Session is one mounted game. It is not safe for concurrent use; every
// method, and every timer callback run by Advance, belongs to the caller's
// goroutine.
type Session struct {
	cfg    config.SkycatConfig
	logger *log.Logger
	clock  *sched.Scheduler

	world      *physics.World
	player     *physics.Body
	boundaries []*physics.Body
	unhook     func()

	spawner   *Spawner
	sweeper   *Sweeper
	corrector *Corrector
	score     ScoreTicker
	light     *Impulse
	strong    *Impulse
	renderer  *Renderer

	physicsTimer *sched.Timer
	spawnTimer   *sched.Timer

	state  State
	closed bool
}

// New mounts a session: it validates cfg, bootstraps the world and binds a
// renderer to it. The session starts in NotStarted with no timers running.
func New(cfg config.SkycatConfig, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	sc := bootstrap(cfg)
	s := &Session{
		cfg:        cfg,
		logger:     logger,
		clock:      sched.New(start),
		world:      sc.world,
		player:     sc.player,
		boundaries: sc.boundaries,
		spawner:    NewSpawner(opts.Seed, cfg.Obstacles, cfg.World.Width, cfg.World.Height),
		sweeper:    NewSweeper(sc.world, cfg.Obstacles.Step, cfg.Obstacles.RetireX),
		corrector:  NewCorrector(cfg.Corrector, cfg.World.Height),
		light:      NewImpulse("jump", cfg.Controls.LightImpulse, cfg.Controls.Throttle),
		strong:     NewImpulse("strong jump", cfg.Controls.StrongImpulse, cfg.Controls.Throttle),
		renderer:   NewRenderer(sc.world, cfg.World.Width, cfg.World.Height),
		state:      NotStarted,
	}
	s.unhook = s.world.OnBeforeStep(s.beforeStep)

	logger.Info("session mounted",
		"world", formatSize(cfg.World.Width, cfg.World.Height),
		"seed", opts.Seed,
		"lanes", len(cfg.Obstacles.Lanes))
	return s, nil
}

// Start moves NotStarted to Running and starts the physics runner, the
// spawn timer and the score timer.
func (s *Session) Start() error {
	if s.closed {
		return ErrClosed
	}
	if s.state != NotStarted {
		return ErrAlreadyStarted
	}

	s.state = Running
	s.physicsTimer = s.clock.Every("physics", s.world.TimeStep(), s.world.Step)
	s.spawnTimer = s.clock.Every("spawn", s.cfg.Obstacles.SpawnInterval, s.spawnTick)
	s.score.Start(s.clock, s.cfg.Score.Interval)

	s.logger.Info("session started", "at", s.clock.Now().Format(time.TimeOnly))
	return nil
}

// Stop cancels the physics runner, the spawn timer and the score timer. The
// scene freezes in place and the state is left unchanged. Jumps are dropped
// until the session is closed, since no step would consume their force.
func (s *Session) Stop() error {
	if s.closed {
		return ErrClosed
	}
	if !s.physicsTimer.Active() && !s.spawnTimer.Active() && !s.score.Running() {
		return ErrNotRunning
	}
	s.physicsTimer.Stop()
	s.spawnTimer.Stop()
	s.score.Stop()
	return nil
}

// Close stops every timer, releases the renderer and clears the world. It is
// safe to call more than once and in any state; only the first call acts.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.clock.StopAll()
	if s.unhook != nil {
		s.unhook()
	}
	s.renderer.Close()
	s.sweeper.Clear()
	s.world.Clear()

	s.logger.Info("session closed",
		"state", s.state,
		"score", s.score.Score(),
		"spawned", s.spawner.Spawned(),
		"retired", s.sweeper.Retired())
	return nil
}

// Advance runs every timer callback due up to now. Returns the number of
// callbacks run.
func (s *Session) Advance(now time.Time) int {
	if s.closed {
		return 0
	}
	return s.clock.Advance(now)
}

// Jump applies the light impulse. Reports whether it took effect: calls
// without a live physics runner or inside the throttle window are dropped.
func (s *Session) Jump(now time.Time) bool {
	return s.fire(s.light, now)
}

// StrongJump applies the strong impulse under its own throttle.
func (s *Session) StrongJump(now time.Time) bool {
	return s.fire(s.strong, now)
}

func (s *Session) fire(imp *Impulse, now time.Time) bool {
	if s.closed || s.state != Running || !s.physicsTimer.Active() {
		return false
	}
	if !imp.Fire(s.player, now) {
		s.logger.Debug("impulse throttled", "impulse", imp.Name())
		return false
	}
	return true
}

// spawnTick creates an obstacle, corrects the player and runs the death
// check, in that order.
func (s *Session) spawnTick() {
	o := s.spawner.Spawn(s.world)
	s.sweeper.Track(o)
	s.logger.Debug("obstacle spawned", "id", o.ID, "lane", o.Lane, "y", o.Body.Position().Y)

	if s.corrector.Correct(s.player) {
		s.die()
	}
}

// beforeStep runs ahead of every physics integration.
func (s *Session) beforeStep() {
	for _, o := range s.sweeper.Sweep() {
		s.logger.Debug("obstacle retired", "id", o.ID)
	}
	s.player.SetAngularVelocity(0)
}

func (s *Session) die() {
	s.state = Dead
	//nolint:errcheck // Timers are live while Running
	s.Stop()
	s.logger.Info("player died",
		"score", s.score.Score(),
		"x", s.player.Position().X,
		"steps", s.world.Steps())
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of whole score intervals spent running.
func (s *Session) Score() int {
	return s.score.Score()
}

// Now returns the session clock.
func (s *Session) Now() time.Time {
	return s.clock.Now()
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	return s.closed
}

// Config returns the configuration the session was mounted with.
func (s *Session) Config() config.SkycatConfig {
	return s.cfg
}

// World returns the session's physics world.
func (s *Session) World() *physics.World {
	return s.world
}

// Player returns the player body.
func (s *Session) Player() *physics.Body {
	return s.player
}

// Boundaries returns the ceiling, left wall and floor, in that order.
func (s *Session) Boundaries() []*physics.Body {
	return s.boundaries
}

// Obstacles returns the live obstacles, oldest first. The slice must not be
// modified.
func (s *Session) Obstacles() []*Obstacle {
	return s.sweeper.Live()
}

// Lanes returns the lane y-coordinates obstacles spawn at.
func (s *Session) Lanes() []float64 {
	return s.spawner.Lanes()
}

// Draw renders the playground into area of dst.
func (s *Session) Draw(dst *core.Screen, area core.Rect) {
	s.renderer.Draw(dst, area)
}
