package world

import (
	"time"

	"github.com/milk9111/platformer/system"
)

// ActorConfig tunes how intents drive the actor.
type ActorConfig struct {
	Width        float64
	Height       float64
	MoveSpeed    float64
	JumpPower    float64
	DashSpeed    float64
	DashDuration time.Duration
}

func DefaultActorConfig() ActorConfig {
	return ActorConfig{
		Width:        32,
		Height:       48,
		MoveSpeed:    240,
		JumpPower:    600,
		DashSpeed:    720,
		DashDuration: 150 * time.Millisecond,
	}
}

// Config bundles the tuning for every system a World runs.
type Config struct {
	Physics    system.PhysicsConfig
	Validation system.ValidationConfig
	Ground     system.GroundConfig
	Jump       system.JumpConfig
	Actor      ActorConfig
	// MaxStepMs caps a single step so a stalled frame cannot tunnel.
	MaxStepMs float64
}

func DefaultConfig() Config {
	return Config{
		Physics:    system.DefaultPhysicsConfig(),
		Validation: system.DefaultValidationConfig(),
		Ground:     system.DefaultGroundConfig(),
		Jump:       system.DefaultJumpConfig(),
		Actor:      DefaultActorConfig(),
		MaxStepMs:  1000.0 / 30.0,
	}
}
