package world

import (
	"time"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/system"
	"github.com/rs/zerolog"
)

// Layout is the static content a level collaborator supplies.
type Layout struct {
	Spawn     component.Vector2
	Obstacles []component.Obstacle
	Pickups   []component.Pickup
}

// World owns the actor, the level layout and the per-step pipeline. It is
// not safe for concurrent use; the host drives it from one loop.
type World struct {
	cfg    Config
	logger zerolog.Logger

	Actor     *component.Actor
	Obstacles []component.Obstacle
	Pickups   []component.Pickup
	spawn     component.Vector2

	integrator *system.Integrator
	resolver   *system.Resolver
	ground     *system.GroundDetector
	jump       *system.JumpGate
	scheduler  *Scheduler
	events     EventQueue

	now          time.Duration
	stepMs       float64
	intents      component.Intents
	lastGround   component.GroundCheckResult
	lastJump     *system.JumpDecision
	prevGrounded bool
}

// Option configures a World.
type Option func(*worldOptions)

type worldOptions struct {
	logger    zerolog.Logger
	observers []system.Observer
}

// WithLogger sets the logger for the world and its systems.
func WithLogger(l zerolog.Logger) Option {
	return func(o *worldOptions) { o.logger = l }
}

// WithObserver adds a notification sink next to the world's own event queue.
func WithObserver(obs system.Observer) Option {
	return func(o *worldOptions) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// New builds a world for the layout with the actor standing at its spawn.
func New(cfg Config, layout Layout, opts ...Option) *World {
	o := worldOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	w := &World{cfg: cfg, logger: o.logger}
	observer := append(system.MultiObserver{eventObserver{w: w}}, o.observers...)
	sysOpts := []system.Option{system.WithObserver(observer), system.WithLogger(o.logger)}

	w.integrator = system.NewIntegrator(cfg.Physics)
	w.resolver = system.NewResolver(cfg.Validation, sysOpts...)
	w.ground = system.NewGroundDetector(cfg.Ground)
	w.jump = system.NewJumpGate(cfg.Jump, w.ground, sysOpts...)
	w.scheduler = NewScheduler()
	for _, step := range []func(*World){
		updateTimers,
		applyIntents,
		integrate,
		resolveCollisions,
		collectPickups,
		detectGround,
		handleJump,
		updateState,
	} {
		w.scheduler.Add(SystemFunc(step))
	}
	w.Load(layout)
	return w
}

// Load replaces the level layout and respawns the actor.
func (w *World) Load(layout Layout) {
	if w == nil {
		return
	}
	w.Obstacles = append([]component.Obstacle(nil), layout.Obstacles...)
	w.Pickups = append([]component.Pickup(nil), layout.Pickups...)
	w.spawn = layout.Spawn
	w.Respawn()
}

// Respawn puts a fresh actor at the spawn point. The session clock, event
// queue and collision statistics carry on.
func (w *World) Respawn() {
	if w == nil {
		return
	}
	a := w.cfg.Actor
	w.Actor = component.NewActor(w.spawn.X, w.spawn.Y, a.Width, a.Height, a.JumpPower)
	w.prevGrounded = false
	w.lastJump = nil
	w.lastGround = component.GroundCheckResult{}
}

// Step advances the simulation by dtMs milliseconds with the given intents.
// Non-positive or non-finite deltas are ignored and large ones are capped.
func (w *World) Step(dtMs float64, in component.Intents) {
	if w == nil || w.Actor == nil {
		return
	}
	if !common.Finite(dtMs) || dtMs <= 0 {
		w.logger.Debug().Float64("dt", dtMs).Msg("skipping step with invalid delta")
		return
	}
	if w.cfg.MaxStepMs > 0 && dtMs > w.cfg.MaxStepMs {
		dtMs = w.cfg.MaxStepMs
	}
	w.stepMs = dtMs
	w.now += msToDuration(dtMs)
	w.intents = in
	w.lastJump = nil
	w.scheduler.Update(w)
}

// SetConfig applies new tuning to every system, e.g. after a hot reload.
func (w *World) SetConfig(cfg Config) {
	if w == nil {
		return
	}
	w.cfg = cfg
	w.integrator.SetConfig(cfg.Physics)
	w.resolver.SetConfig(cfg.Validation)
	w.ground.SetConfig(cfg.Ground)
	w.jump.SetConfig(cfg.Jump)
	if w.Actor != nil {
		w.Actor.JumpPower = cfg.Actor.JumpPower
		w.Actor.Size = component.Size{Width: cfg.Actor.Width, Height: cfg.Actor.Height}
	}
}

func (w *World) Config() Config {
	if w == nil {
		return DefaultConfig()
	}
	return w.cfg
}

// Now is the session time of the last step.
func (w *World) Now() time.Duration {
	if w == nil {
		return 0
	}
	return w.now
}

// Ground is the ground check computed in the last step.
func (w *World) Ground() component.GroundCheckResult {
	if w == nil {
		return component.GroundCheckResult{}
	}
	return w.lastGround
}

// LastJump is the decision for a jump requested in the last step, if any.
func (w *World) LastJump() (system.JumpDecision, bool) {
	if w == nil || w.lastJump == nil {
		return system.JumpDecision{}, false
	}
	return *w.lastJump, true
}

// Stats returns the invalid collision counters.
func (w *World) Stats() system.Stats {
	if w == nil {
		return system.Stats{}
	}
	return w.resolver.Stats()
}

func (w *World) ResetStats() {
	if w == nil {
		return
	}
	w.resolver.ResetStats()
}

// Events returns the world event queue. Hosts drain it after each step.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// ApplyJumpBoost multiplies jump power for the given duration.
func (w *World) ApplyJumpBoost(multiplier float64, d time.Duration) {
	if w == nil || w.Actor == nil {
		return
	}
	w.Actor.JumpBoostMultiplier = multiplier
	w.Actor.BoostRemaining = d
}

// GrantInvincibility starts or extends the invincibility timer.
func (w *World) GrantInvincibility(d time.Duration) {
	if w == nil || w.Actor == nil {
		return
	}
	if d > w.Actor.InvincibleRemaining {
		w.Actor.InvincibleRemaining = d
	}
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
