package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// Runner evaluates an input script once per tick. The script sees the
// globals tick, time_ms and grounded, and sets move, jump, dash and block.
type Runner struct {
	name     string
	compiled *tengo.Compiled
}

// Load compiles a script from the prefab scripts.
func Load(name string) (*Runner, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	r, err := NewRunner(name, src)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func NewRunner(name string, src []byte) (*Runner, error) {
	s := tengo.NewScript(src)
	for _, in := range []struct {
		name  string
		value any
	}{
		{"tick", 0},
		{"time_ms", 0.0},
		{"grounded", false},
		{"move", 0},
		{"jump", false},
		{"dash", false},
		{"block", false},
	} {
		if err := s.Add(in.name, in.value); err != nil {
			return nil, fmt.Errorf("script: %s: add %s: %w", name, in.name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Runner{name: name, compiled: compiled}, nil
}

func (r *Runner) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Intents runs the script for one tick and reads back its outputs. Outputs
// keep their previous value when the script does not assign them.
func (r *Runner) Intents(tick int, timeMs float64, grounded bool) (component.Intents, error) {
	if r == nil || r.compiled == nil {
		return component.Intents{}, fmt.Errorf("script: nil runner")
	}
	for name, value := range map[string]any{
		"tick":     tick,
		"time_ms":  timeMs,
		"grounded": grounded,
	} {
		if err := r.compiled.Set(name, value); err != nil {
			return component.Intents{}, fmt.Errorf("script: %s: set %s: %w", r.name, name, err)
		}
	}
	if err := r.compiled.Run(); err != nil {
		return component.Intents{}, fmt.Errorf("script: %s: tick %d: %w", r.name, tick, err)
	}

	move := r.compiled.Get("move").Float()
	switch {
	case move > 1:
		move = 1
	case move < -1:
		move = -1
	}
	return component.Intents{
		MoveX: move,
		Jump:  r.compiled.Get("jump").Bool(),
		Dash:  r.compiled.Get("dash").Bool(),
		Block: r.compiled.Get("block").Bool(),
	}, nil
}
