package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in screen space (y grows downward).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns r so a Rect can be used wherever a box is expected.
func (r Rect) Rect() Rect { return r }

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects uses strict inequalities, so boxes that only touch, or that have
// zero area, never intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// BB converts the rect to a chipmunk bounding box. Chipmunk is y-up, so the
// screen top maps to B and the screen bottom to T.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}
