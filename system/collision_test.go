package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/stretchr/testify/assert"
)

func TestCheckAABBCollisionSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := common.Rect{X: rng.Float64() * 100, Y: rng.Float64() * 100, Width: rng.Float64() * 40, Height: rng.Float64() * 40}
		b := common.Rect{X: rng.Float64() * 100, Y: rng.Float64() * 100, Width: rng.Float64() * 40, Height: rng.Float64() * 40}
		assert.Equal(t, CheckAABBCollision(a, b), CheckAABBCollision(b, a))
	}
}

func TestCheckAABBCollisionDegenerate(t *testing.T) {
	platform := component.NewObstacle(0, 0, 100, 100)
	point := component.NewEntity(50, 50, 0, 0)
	line := component.NewEntity(50, 10, 0, 30)

	assert.False(t, CheckAABBCollision(point, platform))
	assert.False(t, CheckAABBCollision(line, platform))
	assert.False(t, CheckAABBCollision(nil, platform))

	var nilEntity *component.Entity
	assert.False(t, CheckAABBCollision(nilEntity, platform))
}

func TestCheckCollisionsKeepsInputOrder(t *testing.T) {
	e := component.NewEntity(10, 10, 20, 20)
	obstacles := []component.Obstacle{
		component.NewObstacle(25, 0, 10, 50),
		component.NewObstacle(200, 200, 10, 10),
		component.NewObstacle(0, 25, 50, 10),
		component.NewObstacle(15, 15, -1, 5),
		component.NewObstacle(5, 5, 10, 10),
	}

	hits := CheckCollisions(e, obstacles)
	assert.Equal(t, []component.Obstacle{obstacles[0], obstacles[2], obstacles[4]}, hits)
	assert.Nil(t, CheckCollisions(nil, obstacles))
	assert.Nil(t, CheckCollisions(e, nil))
}
