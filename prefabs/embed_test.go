package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"hop":                       "scripts/hop.tengo",
		"hop.tengo":                 "scripts/hop.tengo",
		"scripts/hop.tengo":         "scripts/hop.tengo",
		"prefabs/scripts/hop.tengo": "scripts/hop.tengo",
		"prefabs/runner.tengo":      "scripts/runner.tengo",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanScriptPath(in), in)
	}
	assert.Empty(t, cleanScriptPath(""))
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "tuning.yaml", cleanPrefabPath("prefabs/tuning.yaml"))
	assert.Equal(t, "tuning.yaml", cleanPrefabPath("tuning.yaml"))
}

func TestEmbeddedScripts(t *testing.T) {
	assert.Equal(t, []string{"hop.tengo", "runner.tengo"}, Scripts())

	data, err := LoadScript("hop")
	require.NoError(t, err)
	assert.Contains(t, string(data), "jump = grounded")
}
