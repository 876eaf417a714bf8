package system

import (
	"strings"
	"time"

	"github.com/milk9111/platformer/component"
	"github.com/rs/zerolog"
)

// JumpFactors is the set of reasons a jump was refused.
type JumpFactors uint8

const (
	FactorNotOnGround JumpFactors = 1 << iota
	FactorBlocking
	FactorDashing
	FactorNoJumpPower
	FactorInvalidActor
)

var factorOrder = []struct {
	factor JumpFactors
	name   string
}{
	{FactorInvalidActor, "invalid_actor"},
	{FactorNotOnGround, "not_on_ground_enhanced"},
	{FactorBlocking, "blocking"},
	{FactorDashing, "dashing"},
	{FactorNoJumpPower, "no_jump_power"},
}

func (f JumpFactors) Has(other JumpFactors) bool {
	return other != 0 && f&other == other
}

// Names lists the factors in a fixed order.
func (f JumpFactors) Names() []string {
	var out []string
	for _, entry := range factorOrder {
		if f&entry.factor != 0 {
			out = append(out, entry.name)
		}
	}
	return out
}

func (f JumpFactors) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), ",")
}

// Reasons reported for allowed jumps.
const (
	ReasonGrounded    = "grounded"
	ReasonGroundCheck = "ground_check"
	ReasonCoyoteTime  = "coyote_time"
)

// JumpDecision is the outcome of a jump request.
type JumpDecision struct {
	Allowed bool
	// Reason is the ground permission used on success, or the first blocking
	// factor on denial.
	Reason  string
	Factors JumpFactors
}

// JumpGate decides jump requests from ground state, coyote time and the
// actor's blocking/dashing flags.
type JumpGate struct {
	cfg      JumpConfig
	ground   *GroundDetector
	observer Observer
	logger   zerolog.Logger
}

func NewJumpGate(cfg JumpConfig, ground *GroundDetector, opts ...Option) *JumpGate {
	o := buildOptions(opts)
	if ground == nil {
		ground = NewGroundDetector(DefaultGroundConfig())
	}
	return &JumpGate{cfg: cfg, ground: ground, observer: o.observer, logger: o.logger}
}

func (g *JumpGate) Config() JumpConfig {
	if g == nil {
		return DefaultJumpConfig()
	}
	return g.cfg
}

func (g *JumpGate) SetConfig(cfg JumpConfig) {
	if g == nil {
		return
	}
	g.cfg = cfg
}

// CanJump evaluates a jump request at session time now. It never changes the
// actor's movement state; repeated calls with the same inputs agree.
func (g *JumpGate) CanJump(a *component.Actor, now time.Duration) JumpDecision {
	if g == nil || a == nil || a.Validate() != nil {
		return JumpDecision{Reason: "invalid_actor", Factors: FactorInvalidActor}
	}

	var factors JumpFactors
	permission := g.groundPermission(a, now)
	if permission == "" {
		factors |= FactorNotOnGround
	}
	if a.IsBlocking {
		factors |= FactorBlocking
	}
	if a.State == component.StateDashing {
		factors |= FactorDashing
	}
	if a.EffectiveJumpPower() <= 0 {
		factors |= FactorNoJumpPower
	}

	if factors != 0 {
		return JumpDecision{Reason: factors.Names()[0], Factors: factors}
	}
	return JumpDecision{Allowed: true, Reason: permission}
}

func (g *JumpGate) groundPermission(a *component.Actor, now time.Duration) string {
	if a.IsOnGround {
		return ReasonGrounded
	}
	if g.ground.Check(a, now).IsOnGround {
		return ReasonGroundCheck
	}
	if now-a.LastGroundContact <= g.Config().CoyoteTime {
		return ReasonCoyoteTime
	}
	return ""
}

// Execute launches the actor. Callers are expected to have an allowed decision.
func (g *JumpGate) Execute(a *component.Actor, d JumpDecision) {
	if a == nil {
		return
	}
	a.Velocity.Y = -a.EffectiveJumpPower()
	a.IsOnGround = false
	a.State = component.StateJumping
	if g == nil {
		return
	}
	g.logger.Debug().Str("reason", d.Reason).Float64("power", a.EffectiveJumpPower()).Msg("jump")
	g.observer.OnJumpSuccess(a, d)
}

// TryJump decides the request and executes it when allowed.
func (g *JumpGate) TryJump(a *component.Actor, now time.Duration) JumpDecision {
	d := g.CanJump(a, now)
	if d.Allowed {
		g.Execute(a, d)
	}
	return d
}
