package diagnostics

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/system"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestObserver(t *testing.T, buf *bytes.Buffer) *Observer {
	t.Helper()
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	o, err := NewObserver(logger, noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return o
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestObserverCountsJumps(t *testing.T) {
	var buf bytes.Buffer
	o := newTestObserver(t, &buf)
	a := component.NewActor(10, 20, 32, 48, 600)

	o.OnJumpSuccess(a, system.JumpDecision{Allowed: true, Reason: system.ReasonGrounded})
	o.OnJumpSuccess(a, system.JumpDecision{Allowed: true, Reason: system.ReasonCoyoteTime})
	o.OnJumpSuccess(nil, system.JumpDecision{Allowed: true, Reason: system.ReasonGrounded})

	tally := o.Tally()
	assert.Equal(t, 3, tally.Jumps)
	assert.Equal(t, map[string]int{"grounded": 2, "coyote_time": 1}, tally.JumpsByReason)

	lines := logLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "jump", lines[0]["message"])
	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, 20.0, lines[0]["y"])
}

func TestObserverCountsInvalidCollisions(t *testing.T) {
	var buf bytes.Buffer
	o := newTestObserver(t, &buf)

	o.OnInvalidCollision(system.InvalidCollision{
		Obstacle:  component.NewObstacle(0, 200, 100, 20),
		Failed:    component.CheckVelocity | component.CheckMovement,
		Recovered: true,
	})
	o.OnInvalidCollision(system.InvalidCollision{
		Obstacle: component.NewObstacle(0, 200, 100, 20),
		Failed:   component.CheckOverlap,
	})

	tally := o.Tally()
	assert.Equal(t, 2, tally.Invalid)
	assert.Equal(t, 1, tally.Unrecovered)
	assert.Equal(t, map[string]int{
		"velocityCheck": 1,
		"movementCheck": 1,
		"overlapCheck":  1,
	}, tally.InvalidByCheck)

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "velocityCheck,movementCheck", lines[0]["failed"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, 200.0, lines[1]["platform_top"])
}

func TestObserverTallyIsACopy(t *testing.T) {
	var buf bytes.Buffer
	o := newTestObserver(t, &buf)
	o.OnJumpSuccess(nil, system.JumpDecision{Reason: system.ReasonGrounded})

	tally := o.Tally()
	tally.JumpsByReason["grounded"] = 99
	assert.Equal(t, 1, o.Tally().JumpsByReason["grounded"])
}

func TestObserverGlobalMeter(t *testing.T) {
	o, err := NewObserver(zerolog.Nop(), nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		o.OnJumpSuccess(nil, system.JumpDecision{Reason: system.ReasonGroundCheck})
	})

	var nilObserver *Observer
	assert.NotPanics(t, func() {
		nilObserver.OnJumpSuccess(nil, system.JumpDecision{})
		nilObserver.OnInvalidCollision(system.InvalidCollision{})
	})
	assert.Zero(t, nilObserver.Tally().Jumps)
}
