package system

import (
	"math"

	"github.com/milk9111/platformer/component"
)

// InvalidCollision is reported when a landing fails validation.
type InvalidCollision struct {
	// Before is the entity as it was handed to the resolver.
	Before component.Entity
	// After is the entity once recovery finished.
	After      component.Entity
	Obstacle   component.Obstacle
	Resolution component.CollisionResolution
	Failed     component.Checks
	Recovered  bool
}

// ResolveCollisionEnhanced resolves like ResolveCollision and then, for
// landings only, checks the result against the state before the collision.
// A failed landing is reported, counted and recovered by undoing the move
// that caused it.
func (r *Resolver) ResolveCollisionEnhanced(e *component.Entity, o component.Obstacle) component.CollisionResolution {
	if r == nil || e.Validate() != nil {
		return component.CollisionResolution{}
	}
	before := *e
	res := r.ResolveCollision(e, o)
	if !res.Landed() {
		return res
	}

	failed := r.validateLanding(before, e, o, res)
	if failed == 0 {
		return res
	}

	res.Valid = false
	res.Failed = failed
	res.Recovered = recoverLanding(before, e, o)
	r.stats.record(failed, res.Recovered)

	report := InvalidCollision{
		Before:     before,
		After:      *e,
		Obstacle:   o,
		Resolution: res,
		Failed:     failed,
		Recovered:  res.Recovered,
	}
	r.logger.Warn().
		Str("failed", failed.String()).
		Bool("recovered", res.Recovered).
		Float64("vy", before.Velocity.Y).
		Float64("overlap", res.Overlap.Y).
		Float64("x", e.Position.X).
		Float64("y", e.Position.Y).
		Float64("platform_top", o.Top()).
		Msg("invalid ground collision")
	r.observer.OnInvalidCollision(report)
	return res
}

func (r *Resolver) validateLanding(before component.Entity, e *component.Entity, o component.Obstacle, res component.CollisionResolution) component.Checks {
	cfg := r.Config()
	enabled := component.AllChecks
	if cfg.Mode == ModeLenient {
		enabled = component.CheckVelocity | component.CheckOverlap
	}

	var failed component.Checks
	if enabled.Has(component.CheckVelocity) && before.Velocity.Y < -cfg.UpwardVelocityTolerance {
		failed |= component.CheckVelocity
	}
	if enabled.Has(component.CheckOverlap) {
		limit := math.Min(before.Size.Height, o.Size.Height)
		if res.Overlap.Y <= 0 || res.Overlap.Y > limit {
			failed |= component.CheckOverlap
		}
	}
	if enabled.Has(component.CheckPosition) && math.Abs(e.Bottom()-o.Top()) > cfg.PositionTolerance {
		failed |= component.CheckPosition
	}
	if enabled.Has(component.CheckMovement) && !before.IsOnGround && before.Position.Equal(before.PrevPosition) {
		failed |= component.CheckMovement
	}
	return failed
}

// recoverLanding restores the entity to its state on entry to the resolver,
// then clamps it onto the platform if its feet still sink into it while its
// head is above the platform top. It reports whether the entity is clear of
// the obstacle afterwards.
func recoverLanding(before component.Entity, e *component.Entity, o component.Obstacle) bool {
	e.Position = before.Position
	e.Velocity = before.Velocity
	e.IsOnGround = before.IsOnGround

	ebox := e.Rect()
	obox := o.Rect()
	overlapsX := ebox.Left() < obox.Right() && ebox.Right() > obox.Left()
	if overlapsX && ebox.Bottom() > obox.Top() && ebox.Top() < obox.Top() {
		e.Position.Y = obox.Top() - e.Size.Height
		e.IsOnGround = true
		if e.Velocity.Y > 0 {
			e.Velocity.Y = 0
		}
	}
	return !CheckAABBCollision(e, o)
}
