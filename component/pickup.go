package component

import (
	"time"

	"github.com/milk9111/platformer/common"
)

// PickupKind names the power-up a pickup grants.
type PickupKind string

const (
	PickupJumpBoost     PickupKind = "jump_boost"
	PickupInvincibility PickupKind = "invincibility"
)

// Pickup is a collectible power-up placed in a level.
type Pickup struct {
	Position Vector2
	Size     Size
	Kind     PickupKind
	// Multiplier is the jump boost multiplier for jump_boost pickups.
	Multiplier float64
	Duration   time.Duration
	Collected  bool
}

func (p Pickup) Rect() common.Rect {
	return common.Rect{X: p.Position.X, Y: p.Position.Y, Width: p.Size.Width, Height: p.Size.Height}
}
