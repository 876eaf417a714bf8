package component

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntityValidate(t *testing.T) {
	cases := []struct {
		name   string
		entity *Entity
		want   error
	}{
		{"ok", NewEntity(0, 0, 10, 20), nil},
		{"nil", nil, ErrNilEntity},
		{"negative_width", NewEntity(0, 0, -1, 20), ErrInvalidSize},
		{"nan_height", NewEntity(0, 0, 1, math.NaN()), ErrInvalidSize},
		{"inf_position", &Entity{Position: Vector2{X: math.Inf(1)}, Size: Size{Width: 1, Height: 1}}, ErrInvalidVector},
		{"nan_velocity", &Entity{Velocity: Vector2{Y: math.NaN()}, Size: Size{Width: 1, Height: 1}}, ErrInvalidVector},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.entity.Validate()
			if c.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestChecksString(t *testing.T) {
	assert.Equal(t, "none", Checks(0).String())
	assert.Equal(t, "velocityCheck,movementCheck", (CheckVelocity | CheckMovement).String())
	assert.Equal(t, []Checks{CheckOverlap, CheckPosition}, (CheckPosition | CheckOverlap).List())
	assert.True(t, AllChecks.Has(CheckPosition))
	assert.False(t, CheckVelocity.Has(CheckOverlap))
}

func TestActorGroundContactNeverDecreases(t *testing.T) {
	a := NewActor(0, 0, 10, 10, 400)
	a.RecordGroundContact(50 * time.Millisecond)
	a.RecordGroundContact(20 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, a.LastGroundContact)
	assert.Equal(t, 400.0, a.EffectiveJumpPower())
}
