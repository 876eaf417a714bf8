package system

import (
	"fmt"
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

// Integrator applies gravity and friction and moves entities. It keeps no
// state besides its configuration.
type Integrator struct {
	cfg PhysicsConfig
}

func NewIntegrator(cfg PhysicsConfig) *Integrator {
	return &Integrator{cfg: cfg}
}

func (in *Integrator) Config() PhysicsConfig {
	if in == nil {
		return DefaultPhysicsConfig()
	}
	return in.cfg
}

// SetConfig swaps the tuning, used on hot reload.
func (in *Integrator) SetConfig(cfg PhysicsConfig) {
	if in == nil {
		return
	}
	in.cfg = cfg
}

// ApplyGravity accelerates the entity downward, capped at terminal velocity.
func (in *Integrator) ApplyGravity(e *component.Entity, dtMs float64) error {
	if err := checkStep(e, dtMs); err != nil {
		return err
	}
	cfg := in.Config()
	dt := common.MsToSeconds(dtMs)
	e.Velocity.Y = math.Min(e.Velocity.Y+cfg.Gravity*dt, cfg.TerminalVelocity)
	return nil
}

// ApplyFriction damps horizontal speed with the ground or air coefficient.
func (in *Integrator) ApplyFriction(e *component.Entity, dtMs float64, onGround bool) error {
	if err := checkStep(e, dtMs); err != nil {
		return err
	}
	cfg := in.Config()
	coef := cfg.AirResistance
	if onGround {
		coef = cfg.GroundFriction
	}
	e.Velocity.X *= coef
	if math.Abs(e.Velocity.X) < cfg.StopThreshold {
		e.Velocity.X = 0
	}
	return nil
}

// UpdatePosition integrates velocity into position and remembers where the
// entity was before the move.
func (in *Integrator) UpdatePosition(e *component.Entity, dtMs float64) error {
	if err := checkStep(e, dtMs); err != nil {
		return err
	}
	dt := common.MsToSeconds(dtMs)
	e.PrevPosition = e.Position
	e.Position = e.Position.Add(e.Velocity.Mult(dt))
	return nil
}

func checkStep(e *component.Entity, dtMs float64) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !common.Finite(dtMs) || dtMs <= 0 {
		return fmt.Errorf("%w: %v", component.ErrInvalidDelta, dtMs)
	}
	return nil
}
