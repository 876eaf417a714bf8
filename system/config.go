package system

import "time"

// PhysicsConfig tunes the kinematic integrator. Velocities are in units per
// second, gravity in units per second squared.
type PhysicsConfig struct {
	Gravity          float64
	TerminalVelocity float64
	GroundFriction   float64
	AirResistance    float64
	// StopThreshold snaps smaller horizontal speeds to zero.
	StopThreshold float64
}

func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:          1500,
		TerminalVelocity: 900,
		GroundFriction:   0.8,
		AirResistance:    0.95,
		StopThreshold:    0.1,
	}
}

// ValidationMode selects how much of the ground landing validation runs.
type ValidationMode string

const (
	// ModeStrict runs every landing check.
	ModeStrict ValidationMode = "strict"
	// ModeLenient only rejects strongly rising or tunnelling landings.
	ModeLenient ValidationMode = "lenient"
)

type ValidationConfig struct {
	Mode ValidationMode
	// UpwardVelocityTolerance is how fast an entity may still be rising when
	// it is classified as landing.
	UpwardVelocityTolerance float64
	// PositionTolerance is the allowed gap between feet and platform top.
	PositionTolerance float64
}

func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		Mode:                    ModeStrict,
		UpwardVelocityTolerance: 10,
		PositionTolerance:       2,
	}
}

// GroundConfig replaces the fixed canvas geometry the position heuristic
// used to assume.
type GroundConfig struct {
	// PositionHeuristic enables the position signal. When disabled the signal
	// is not applicable and carries no weight.
	PositionHeuristic bool
	CanvasHeight      float64
	GroundOffset      float64
	GroundTolerance   float64
	MaxJumpHeight     float64
	NearZeroVelocity  float64

	PhysicsWeight  float64
	PositionWeight float64
	VelocityWeight float64
}

func DefaultGroundConfig() GroundConfig {
	return GroundConfig{
		PositionHeuristic: true,
		CanvasHeight:      600,
		GroundOffset:      50,
		GroundTolerance:   5,
		MaxJumpHeight:     200,
		NearZeroVelocity:  0.1,
		PhysicsWeight:     0.6,
		PositionWeight:    0.3,
		VelocityWeight:    0.1,
	}
}

// GroundLine is the y coordinate the position heuristic treats as the floor.
func (c GroundConfig) GroundLine() float64 {
	return c.CanvasHeight - c.GroundOffset
}

type JumpConfig struct {
	CoyoteTime time.Duration
}

func DefaultJumpConfig() JumpConfig {
	return JumpConfig{CoyoteTime: 100 * time.Millisecond}
}
