package system

import (
	"math"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/rs/zerolog"
)

// Resolver separates overlapping entities from static obstacles and keeps the
// invalid landing statistics for its own simulation.
type Resolver struct {
	cfg      ValidationConfig
	observer Observer
	logger   zerolog.Logger
	stats    Stats
}

func NewResolver(cfg ValidationConfig, opts ...Option) *Resolver {
	o := buildOptions(opts)
	return &Resolver{
		cfg:      cfg,
		observer: o.observer,
		logger:   o.logger,
	}
}

func (r *Resolver) Config() ValidationConfig {
	if r == nil {
		return DefaultValidationConfig()
	}
	return r.cfg
}

func (r *Resolver) SetConfig(cfg ValidationConfig) {
	if r == nil {
		return
	}
	r.cfg = cfg
}

// ResolveCollision pushes e out of o along the axis of least overlap and
// zeroes the matching velocity component. Vertical wins exact ties so that
// landing beats a sideways bump. Malformed input or no overlap returns an
// unresolved result and leaves e untouched.
func (r *Resolver) ResolveCollision(e *component.Entity, o component.Obstacle) component.CollisionResolution {
	if e.Validate() != nil || !o.Valid() {
		return component.CollisionResolution{}
	}
	ebox := e.Rect()
	obox := o.Rect()
	if !ebox.Intersects(obox) {
		return component.CollisionResolution{}
	}

	res := overlapOf(ebox, obox)
	switch res.Axis {
	case component.AxisVertical:
		e.Position.Y -= res.Overlap.Y
		e.Velocity.Y = 0
		if res.Direction == component.DirectionBottom {
			e.IsOnGround = true
		}
	case component.AxisHorizontal:
		e.Position.X -= res.Overlap.X
		e.Velocity.X = 0
	}
	res.Resolved = true
	res.Valid = true
	return res
}

// overlapOf computes the signed overlap on both axes. A positive overlap
// pushes toward negative coordinates (left / up).
func overlapOf(ebox, obox common.Rect) component.CollisionResolution {
	var res component.CollisionResolution

	hitFromLeft := math.Abs(ebox.Right() - obox.Left())
	hitFromRight := math.Abs(obox.Right() - ebox.Left())
	hDir := component.DirectionRight
	if hitFromLeft <= hitFromRight {
		res.Overlap.X = hitFromLeft
	} else {
		res.Overlap.X = -hitFromRight
		hDir = component.DirectionLeft
	}

	fromAbove := math.Abs(ebox.Bottom() - obox.Top())
	fromBelow := math.Abs(obox.Bottom() - ebox.Top())
	vDir := component.DirectionBottom
	if fromAbove <= fromBelow {
		res.Overlap.Y = fromAbove
	} else {
		res.Overlap.Y = -fromBelow
		vDir = component.DirectionTop
	}

	if math.Abs(res.Overlap.Y) <= math.Abs(res.Overlap.X) {
		res.Axis = component.AxisVertical
		res.Direction = vDir
	} else {
		res.Axis = component.AxisHorizontal
		res.Direction = hDir
	}
	return res
}
