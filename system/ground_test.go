package system

import (
	"testing"
	"time"

	"github.com/milk9111/platformer/component"
	"github.com/stretchr/testify/assert"
)

func TestGroundCheckSignals(t *testing.T) {
	cases := []struct {
		name       string
		y          float64
		vy         float64
		grounded   bool
		want       component.GroundSignals
		wantGround bool
		wantConf   float64
	}{
		{"physics_only", 100, 200, true, component.GroundSignals{Physics: true}, true, 0.6},
		{"near_ground_line", 502, 300, false, component.GroundSignals{Position: true}, true, 0.3},
		{"resting_below_jump_height", 352, 0, false, component.GroundSignals{Position: true, Velocity: true}, true, 0.4},
		{"velocity_alone_is_not_ground", 52, 0, false, component.GroundSignals{Velocity: true}, false, 0.1},
		{"airborne", 52, -250, false, component.GroundSignals{}, false, 0},
		{"all", 502, 0.05, true, component.GroundSignals{Physics: true, Position: true, Velocity: true}, true, 1},
	}

	g := NewGroundDetector(DefaultGroundConfig())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := component.NewActor(0, c.y, 32, 48, 600)
			a.Velocity.Y = c.vy
			a.IsOnGround = c.grounded

			res := g.Check(a, 10*time.Millisecond)
			assert.Equal(t, c.want, res.Signals)
			assert.Equal(t, c.wantGround, res.IsOnGround)
			assert.InDelta(t, c.wantConf, res.Confidence, 1e-9)
		})
	}
}

func TestGroundConfidenceBounds(t *testing.T) {
	for _, heuristic := range []bool{true, false} {
		cfg := DefaultGroundConfig()
		cfg.PositionHeuristic = heuristic
		g := NewGroundDetector(cfg)
		for mask := 0; mask < 8; mask++ {
			s := component.GroundSignals{Physics: mask&1 != 0, Position: mask&2 != 0, Velocity: mask&4 != 0}
			conf := g.Confidence(s)
			assert.GreaterOrEqual(t, conf, 0.0)
			assert.LessOrEqual(t, conf, 1.0)

			all := s.Physics && s.Velocity && (s.Position || !heuristic)
			if all {
				assert.Equal(t, 1.0, conf, "mask=%d heuristic=%v", mask, heuristic)
			} else {
				assert.Less(t, conf, 1.0, "mask=%d heuristic=%v", mask, heuristic)
			}
		}
	}
}

func TestGroundCheckRecordsContact(t *testing.T) {
	g := NewGroundDetector(DefaultGroundConfig())
	a := component.NewActor(0, 100, 32, 48, 600)
	a.Velocity.Y = 200

	g.Check(a, 40*time.Millisecond)
	assert.Equal(t, time.Duration(0), a.LastGroundContact)

	a.IsOnGround = true
	g.Check(a, 200*time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, a.LastGroundContact)

	g.Check(a, 150*time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, a.LastGroundContact)
}

func TestGroundHistoryIsBounded(t *testing.T) {
	g := NewGroundDetector(DefaultGroundConfig())
	a := component.NewActor(0, 100, 32, 48, 600)
	for i := 0; i < 60; i++ {
		g.Check(a, time.Duration(i)*time.Millisecond)
	}
	assert.Equal(t, component.GroundHistorySize, a.GroundHistory.Len())

	first := a.GroundHistory.Values()[0]
	assert.Equal(t, 10*time.Millisecond, first.Time)
	last, ok := a.GroundHistory.Last()
	assert.True(t, ok)
	assert.Equal(t, 59*time.Millisecond, last.Time)
}

func TestGroundCheckInvalidActor(t *testing.T) {
	g := NewGroundDetector(DefaultGroundConfig())
	assert.Equal(t, component.GroundCheckResult{}, g.Check(nil, 0))

	a := component.NewActor(0, 0, -1, 10, 600)
	a.IsOnGround = true
	assert.Equal(t, component.GroundCheckResult{}, g.Check(a, time.Second))
	assert.Equal(t, time.Duration(0), a.LastGroundContact)
}
