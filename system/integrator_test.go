package system

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/platformer/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGravity(t *testing.T) {
	in := NewIntegrator(PhysicsConfig{Gravity: 1000, TerminalVelocity: 300})

	cases := []struct {
		name string
		vy   float64
		dt   float64
		want float64
	}{
		{"one_frame", 0, 16, 16},
		{"converts_ms", 10, 1000, 300},
		{"clamped", 295, 16, 300},
		{"rising", -200, 100, -100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := component.NewEntity(0, 0, 10, 10)
			e.Velocity.Y = c.vy
			require.NoError(t, in.ApplyGravity(e, c.dt))
			assert.InDelta(t, c.want, e.Velocity.Y, 1e-9)
		})
	}
}

func TestApplyFriction(t *testing.T) {
	in := NewIntegrator(PhysicsConfig{GroundFriction: 0.5, AirResistance: 0.9, StopThreshold: 0.1})

	cases := []struct {
		name     string
		vx       float64
		onGround bool
		want     float64
	}{
		{"ground", 10, true, 5},
		{"air", 10, false, 9},
		{"snaps_to_zero", 0.15, true, 0},
		{"negative", -4, true, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := component.NewEntity(0, 0, 10, 10)
			e.Velocity.X = c.vx
			require.NoError(t, in.ApplyFriction(e, 16, c.onGround))
			assert.InDelta(t, c.want, e.Velocity.X, 1e-9)
		})
	}
}

func TestUpdatePosition(t *testing.T) {
	in := NewIntegrator(DefaultPhysicsConfig())
	e := component.NewEntity(100, 50, 10, 10)
	e.Velocity = component.Vector2{X: 200, Y: -100}

	require.NoError(t, in.UpdatePosition(e, 500))
	assert.InDelta(t, 200, e.Position.X, 1e-9)
	assert.InDelta(t, 0, e.Position.Y, 1e-9)
	assert.Equal(t, component.Vector2{X: 100, Y: 50}, e.PrevPosition)
}

func TestIntegratorRejectsMalformedInput(t *testing.T) {
	in := NewIntegrator(DefaultPhysicsConfig())

	var nilEntity *component.Entity
	assert.True(t, errors.Is(in.ApplyGravity(nilEntity, 16), component.ErrNilEntity))

	bad := component.NewEntity(1, 2, -5, 10)
	bad.Velocity.Y = 3
	assert.True(t, errors.Is(in.ApplyGravity(bad, 16), component.ErrInvalidSize))
	assert.Equal(t, 3.0, bad.Velocity.Y)

	e := component.NewEntity(1, 2, 5, 10)
	e.Velocity.X = 7
	for _, dt := range []float64{0, -16, math.NaN()} {
		assert.True(t, errors.Is(in.UpdatePosition(e, dt), component.ErrInvalidDelta))
		assert.True(t, errors.Is(in.ApplyFriction(e, dt, true), component.ErrInvalidDelta))
	}
	assert.Equal(t, component.Vector2{X: 1, Y: 2}, e.Position)
	assert.Equal(t, 7.0, e.Velocity.X)
}
