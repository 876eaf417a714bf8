package script

import (
	"testing"

	"github.com/milk9111/platformer/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedHopScript(t *testing.T) {
	r, err := Load("hop")
	require.NoError(t, err)
	assert.Equal(t, "hop", r.Name())

	in, err := r.Intents(0, 0, true)
	require.NoError(t, err)
	assert.Equal(t, component.Intents{Jump: true}, in)

	in, err = r.Intents(1, 16, false)
	require.NoError(t, err)
	assert.Equal(t, component.Intents{}, in)
}

func TestEmbeddedRunnerScript(t *testing.T) {
	r, err := Load("runner.tengo")
	require.NoError(t, err)

	cases := []struct {
		name     string
		tick     int
		grounded bool
		want     component.Intents
	}{
		{"start", 0, true, component.Intents{MoveX: 1, Jump: true}},
		{"run", 1, true, component.Intents{MoveX: 1}},
		{"jump_tick_airborne", 45, false, component.Intents{MoveX: 1}},
		{"jump_tick_grounded", 90, true, component.Intents{MoveX: 1, Jump: true}},
		{"dash_tick", 120, false, component.Intents{MoveX: 1, Dash: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, err := r.Intents(c.tick, float64(c.tick)*16, c.grounded)
			require.NoError(t, err)
			assert.Equal(t, c.want, in)
		})
	}
}

func TestRunnerClampsMove(t *testing.T) {
	r, err := NewRunner("inline", []byte(`move = time_ms > 100 ? -5 : 2.5`))
	require.NoError(t, err)

	in, err := r.Intents(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, in.MoveX)

	in, err = r.Intents(10, 160, false)
	require.NoError(t, err)
	assert.Equal(t, -1.0, in.MoveX)
}

func TestRunnerKeepsUnassignedOutputs(t *testing.T) {
	r, err := NewRunner("inline", []byte(`if tick == 0 { block = true }`))
	require.NoError(t, err)

	in, err := r.Intents(0, 0, true)
	require.NoError(t, err)
	assert.True(t, in.Block)

	in, err = r.Intents(1, 16, true)
	require.NoError(t, err)
	assert.True(t, in.Block)
}

func TestRunnerErrors(t *testing.T) {
	_, err := NewRunner("broken", []byte(`move = (`))
	assert.ErrorContains(t, err, "script: compile broken")

	_, err = Load("missing")
	assert.ErrorContains(t, err, "script: load missing")

	r, err := NewRunner("panics", []byte(`move = 1 / (tick - tick)`))
	require.NoError(t, err)
	_, err = r.Intents(3, 0, false)
	assert.ErrorContains(t, err, "script: panics: tick 3")

	var nilRunner *Runner
	_, err = nilRunner.Intents(0, 0, false)
	assert.Error(t, err)
}
