package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// Vector2 is a plain x/y pair used for positions, velocities and overlaps.
type Vector2 = cp.Vector

// Size holds the extents of an axis-aligned box.
type Size struct {
	Width  float64
	Height float64
}

// Valid reports whether both extents are finite and non-negative.
func (s Size) Valid() bool {
	return common.Finite(s.Width, s.Height) && s.Width >= 0 && s.Height >= 0
}

// Entity is the generic physics subject.
type Entity struct {
	Position Vector2
	// PrevPosition is where the entity was before the last position update.
	PrevPosition Vector2
	Velocity     Vector2
	Size         Size
	IsOnGround   bool
}

// NewEntity creates an entity at (x, y) with the given extents.
func NewEntity(x, y, width, height float64) *Entity {
	pos := Vector2{X: x, Y: y}
	return &Entity{
		Position:     pos,
		PrevPosition: pos,
		Size:         Size{Width: width, Height: height},
	}
}

// Validate returns a sentinel error describing the first malformed field.
func (e *Entity) Validate() error {
	if e == nil {
		return ErrNilEntity
	}
	if !e.Size.Valid() {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, e.Size.Width, e.Size.Height)
	}
	if !common.Finite(e.Position.X, e.Position.Y, e.PrevPosition.X, e.PrevPosition.Y) {
		return fmt.Errorf("%w: position", ErrInvalidVector)
	}
	if !common.Finite(e.Velocity.X, e.Velocity.Y) {
		return fmt.Errorf("%w: velocity", ErrInvalidVector)
	}
	return nil
}

func (e *Entity) Rect() common.Rect {
	if e == nil {
		return common.Rect{}
	}
	return common.Rect{X: e.Position.X, Y: e.Position.Y, Width: e.Size.Width, Height: e.Size.Height}
}

// Bottom returns the y coordinate of the entity's feet.
func (e *Entity) Bottom() float64 {
	if e == nil {
		return 0
	}
	return e.Position.Y + e.Size.Height
}

// Obstacle is a static platform. It is never mutated during a physics step.
type Obstacle struct {
	Position Vector2
	Size     Size
}

// NewObstacle creates an obstacle with its top-left corner at (x, y).
func NewObstacle(x, y, width, height float64) Obstacle {
	return Obstacle{Position: Vector2{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

func (o Obstacle) Valid() bool {
	return o.Size.Valid() && common.Finite(o.Position.X, o.Position.Y)
}

func (o Obstacle) Rect() common.Rect {
	return common.Rect{X: o.Position.X, Y: o.Position.Y, Width: o.Size.Width, Height: o.Size.Height}
}

func (o Obstacle) Top() float64 {
	return o.Position.Y
}

// Bounds returns the obstacle as a chipmunk bounding box.
func (o Obstacle) Bounds() cp.BB {
	return o.Rect().BB()
}
