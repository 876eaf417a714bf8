package component

import "strings"

// Axis is the axis a collision was resolved along.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Direction names the side of the entity that made contact. DirectionBottom
// means the entity's feet touched the obstacle top.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionTop
	DirectionBottom
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Checks is a set of ground validation checks.
type Checks uint8

const (
	CheckVelocity Checks = 1 << iota
	CheckOverlap
	CheckPosition
	CheckMovement

	AllChecks = CheckVelocity | CheckOverlap | CheckPosition | CheckMovement
)

var checkOrder = []struct {
	check Checks
	name  string
}{
	{CheckVelocity, "velocity"},
	{CheckOverlap, "overlap"},
	{CheckPosition, "position"},
	{CheckMovement, "movement"},
}

func (c Checks) Has(other Checks) bool {
	return other != 0 && c&other == other
}

// List splits the set into single checks in a fixed order.
func (c Checks) List() []Checks {
	var out []Checks
	for _, entry := range checkOrder {
		if c&entry.check != 0 {
			out = append(out, entry.check)
		}
	}
	return out
}

func (c Checks) String() string {
	if c == 0 {
		return "none"
	}
	names := make([]string, 0, len(checkOrder))
	for _, entry := range checkOrder {
		if c&entry.check != 0 {
			names = append(names, entry.name+"Check")
		}
	}
	return strings.Join(names, ",")
}

// CollisionResolution describes a single entity/obstacle resolution.
type CollisionResolution struct {
	Resolved  bool
	Axis      Axis
	Direction Direction
	Overlap   Vector2
	Valid     bool
	Recovered bool
	Failed    Checks
}

// Landed reports whether the resolution put the entity on top of the obstacle.
func (r CollisionResolution) Landed() bool {
	return r.Resolved && r.Direction == DirectionBottom
}
