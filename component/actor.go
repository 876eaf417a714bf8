package component

import "time"

// MovementState is the actor's high level movement mode.
type MovementState string

const (
	StateIdle     MovementState = "idle"
	StateRunning  MovementState = "running"
	StateJumping  MovementState = "jumping"
	StateFalling  MovementState = "falling"
	StateDashing  MovementState = "dashing"
	StateBlocking MovementState = "blocking"
)

// GroundHistorySize bounds the ground confidence history kept per actor.
const GroundHistorySize = 50

// Actor is a player-like entity that can jump, dash and block.
type Actor struct {
	Entity

	State MovementState
	// LastGroundContact is the session time of the last grounded evaluation.
	LastGroundContact time.Duration
	GroundHistory     *History[GroundSample]

	IsBlocking          bool
	IsDashing           bool
	FacingRight         bool
	JumpPower           float64
	JumpBoostMultiplier float64

	// Countdown timers, decremented once per step.
	DashRemaining       time.Duration
	BoostRemaining      time.Duration
	InvincibleRemaining time.Duration
}

// NewActor creates an idle actor facing right with a unit jump multiplier.
func NewActor(x, y, width, height, jumpPower float64) *Actor {
	return &Actor{
		Entity:              *NewEntity(x, y, width, height),
		State:               StateIdle,
		GroundHistory:       NewHistory[GroundSample](GroundHistorySize),
		FacingRight:         true,
		JumpPower:           jumpPower,
		JumpBoostMultiplier: 1,
	}
}

// EffectiveJumpPower is the jump power after the boost multiplier.
func (a *Actor) EffectiveJumpPower() float64 {
	if a == nil {
		return 0
	}
	return a.JumpPower * a.JumpBoostMultiplier
}

// Invincible reports whether the invincibility timer is still running.
func (a *Actor) Invincible() bool {
	return a != nil && a.InvincibleRemaining > 0
}

// RecordGroundContact moves LastGroundContact forward to now. Earlier
// timestamps are ignored so the value never decreases.
func (a *Actor) RecordGroundContact(now time.Duration) {
	if a == nil {
		return
	}
	if now > a.LastGroundContact {
		a.LastGroundContact = now
	}
}

// Intents are the per-tick movement requests supplied by the input collaborator.
type Intents struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	Jump  bool
	Dash  bool
	Block bool
}
