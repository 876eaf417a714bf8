package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
)

// Box is anything with an axis-aligned bounding rect.
type Box interface {
	Rect() common.Rect
}

// CheckAABBCollision reports whether the two boxes overlap. The test is
// symmetric and zero-area boxes never collide.
func CheckAABBCollision(a, b Box) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Rect().Intersects(b.Rect())
}

// CheckCollisions returns the obstacles overlapping e, in input order.
// Malformed obstacles are skipped.
func CheckCollisions(e *component.Entity, obstacles []component.Obstacle) []component.Obstacle {
	if e.Validate() != nil || len(obstacles) == 0 {
		return nil
	}
	rect := e.Rect()
	var hits []component.Obstacle
	for _, o := range obstacles {
		if !o.Valid() {
			continue
		}
		if rect.Intersects(o.Rect()) {
			hits = append(hits, o)
		}
	}
	return hits
}
