package world

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/system"
)

func updateTimers(w *World) {
	a := w.Actor
	dt := msToDuration(w.stepMs)

	if a.DashRemaining > 0 {
		a.DashRemaining -= dt
		if a.DashRemaining <= 0 {
			a.DashRemaining = 0
			a.IsDashing = false
		}
	}
	if a.BoostRemaining > 0 {
		a.BoostRemaining -= dt
		if a.BoostRemaining <= 0 {
			a.BoostRemaining = 0
			a.JumpBoostMultiplier = 1
		}
	}
	if a.InvincibleRemaining > 0 {
		a.InvincibleRemaining -= dt
		if a.InvincibleRemaining < 0 {
			a.InvincibleRemaining = 0
		}
	}
}

func applyIntents(w *World) {
	a := w.Actor
	in := w.intents
	cfg := w.cfg.Actor

	a.IsBlocking = in.Block && !a.IsDashing
	if a.IsBlocking {
		a.State = component.StateBlocking
		if a.IsOnGround {
			a.Velocity.X = 0
		}
		return
	}

	if in.Dash && !a.IsDashing && cfg.DashDuration > 0 {
		dir := 1.0
		if in.MoveX < 0 || (in.MoveX == 0 && !a.FacingRight) {
			dir = -1
		}
		a.FacingRight = dir > 0
		a.IsDashing = true
		a.DashRemaining = cfg.DashDuration
		a.State = component.StateDashing
		a.Velocity.X = dir * cfg.DashSpeed
		a.Velocity.Y = 0
		return
	}
	if a.IsDashing {
		return
	}

	if in.MoveX != 0 {
		a.Velocity.X = math.Max(-1, math.Min(1, in.MoveX)) * cfg.MoveSpeed
		a.FacingRight = in.MoveX > 0
	}
}

func integrate(w *World) {
	a := w.Actor
	e := &a.Entity
	if !a.IsDashing {
		if err := w.integrator.ApplyGravity(e, w.stepMs); err != nil {
			w.logger.Error().Err(err).Msg("apply gravity")
			return
		}
		if w.intents.MoveX == 0 || a.IsBlocking {
			if err := w.integrator.ApplyFriction(e, w.stepMs, a.IsOnGround); err != nil {
				w.logger.Error().Err(err).Msg("apply friction")
				return
			}
		}
	}
	if err := w.integrator.UpdatePosition(e, w.stepMs); err != nil {
		w.logger.Error().Err(err).Msg("update position")
	}
}

// resolveCollisions resolves each touching obstacle in level order. The
// ground flag from the previous step stays in place while resolving so the
// landing checks see it, and is replaced by what this step found afterwards.
func resolveCollisions(w *World) {
	a := w.Actor
	e := &a.Entity
	grounded := false
	for _, o := range system.CheckCollisions(e, w.Obstacles) {
		if !system.CheckAABBCollision(e, o) {
			continue
		}
		res := w.resolver.ResolveCollisionEnhanced(e, o)
		if res.Landed() && (res.Valid || e.IsOnGround) {
			grounded = true
		}
	}
	if !grounded && a.Velocity.Y >= 0 {
		grounded = standingOn(e, w.Obstacles)
	}
	a.IsOnGround = grounded
}

// standingOn reports whether the entity's feet rest exactly on a platform
// top. Resolution leaves the entity touching but not overlapping, so this is
// what keeps it grounded on the step after a clean landing.
func standingOn(e *component.Entity, obstacles []component.Obstacle) bool {
	box := e.Rect()
	for _, o := range obstacles {
		if !o.Valid() {
			continue
		}
		ob := o.Rect()
		if box.Right() > ob.Left() && box.Left() < ob.Right() && common.ApproxEqual(box.Bottom(), ob.Top(), 1e-6) {
			return true
		}
	}
	return false
}

func collectPickups(w *World) {
	a := w.Actor
	for i := range w.Pickups {
		p := &w.Pickups[i]
		if p.Collected || !system.CheckAABBCollision(a, p) {
			continue
		}
		p.Collected = true
		switch p.Kind {
		case component.PickupJumpBoost:
			w.ApplyJumpBoost(p.Multiplier, p.Duration)
		case component.PickupInvincibility:
			w.GrantInvincibility(p.Duration)
		default:
			w.logger.Warn().Str("kind", string(p.Kind)).Msg("unknown pickup kind")
		}
		w.events.Push(Event{Kind: EventPickup, Time: w.now, Data: *p})
	}
}

func detectGround(w *World) {
	w.lastGround = w.ground.Check(w.Actor, w.now)
}

func handleJump(w *World) {
	if !w.intents.Jump {
		return
	}
	d := w.jump.TryJump(w.Actor, w.now)
	w.lastJump = &d
	if !d.Allowed {
		w.logger.Debug().Str("reason", d.Reason).Str("factors", d.Factors.String()).Msg("jump denied")
		w.events.Push(Event{Kind: EventJumpDenied, Time: w.now, Data: d})
	}
}

func updateState(w *World) {
	a := w.Actor
	switch {
	case a.IsBlocking:
		a.State = component.StateBlocking
	case a.IsDashing:
		a.State = component.StateDashing
	case a.IsOnGround:
		if math.Abs(a.Velocity.X) > w.cfg.Physics.StopThreshold {
			a.State = component.StateRunning
		} else {
			a.State = component.StateIdle
		}
	case a.Velocity.Y < 0:
		a.State = component.StateJumping
	default:
		a.State = component.StateFalling
	}

	if a.IsOnGround && !w.prevGrounded {
		w.events.Push(Event{Kind: EventLanded, Time: w.now})
	}
	if !a.IsOnGround && w.prevGrounded {
		w.events.Push(Event{Kind: EventLeftGround, Time: w.now})
	}
	w.prevGrounded = a.IsOnGround
}
