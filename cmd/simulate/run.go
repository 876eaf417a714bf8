package main

import (
	"fmt"
	"time"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diagnostics"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/script"
	"github.com/milk9111/platformer/system"
	"github.com/milk9111/platformer/world"
	"github.com/rs/zerolog"
)

// Summary is the outcome of a headless run.
type Summary struct {
	Level    string
	Script   string
	Ticks    int
	Elapsed  time.Duration
	Final    component.Actor
	Stats    system.Stats
	Tally    diagnostics.Tally
	Events   map[world.EventKind]int
	Airborne int
}

// Run drives a world with an input script for the configured number of ticks.
func Run(s *config.Settings, logger zerolog.Logger) (*Summary, error) {
	tuning, err := prefabs.LoadTuningSpec(s.Tuning)
	if err != nil {
		return nil, err
	}
	lvl, err := levels.Load(s.Level)
	if err != nil {
		return nil, err
	}
	runner, err := script.Load(s.Script)
	if err != nil {
		return nil, err
	}
	observer, err := diagnostics.NewObserver(logger, nil)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	w := world.New(tuning.WorldConfig(), lvl.Layout(),
		world.WithLogger(logger),
		world.WithObserver(observer),
	)
	logger.Info().
		Str("level", lvl.Name).
		Str("script", runner.Name()).
		Int("ticks", s.Ticks).
		Float64("step_ms", s.StepMs).
		Msg("simulation started")

	summary := &Summary{
		Level:  lvl.Name,
		Script: runner.Name(),
		Events: map[world.EventKind]int{},
	}
	for tick := 0; tick < s.Ticks; tick++ {
		timeMs := float64(w.Now()) / float64(time.Millisecond)
		in, err := runner.Intents(tick, timeMs, w.Actor.IsOnGround)
		if err != nil {
			return nil, err
		}
		w.Step(s.StepMs, in)

		for _, evt := range w.Events().Drain() {
			summary.Events[evt.Kind]++
			logger.Debug().Int("tick", tick).Str("event", string(evt.Kind)).Msg("world event")
		}
		if !w.Actor.IsOnGround {
			summary.Airborne++
		}
		summary.Ticks++
	}

	summary.Elapsed = w.Now()
	summary.Final = *w.Actor
	summary.Stats = w.Stats()
	summary.Tally = observer.Tally()
	return summary, nil
}

func (s *Summary) Log(logger zerolog.Logger) {
	logger.Info().
		Str("level", s.Level).
		Str("script", s.Script).
		Int("ticks", s.Ticks).
		Dur("elapsed", s.Elapsed).
		Str("state", string(s.Final.State)).
		Float64("x", s.Final.Position.X).
		Float64("y", s.Final.Position.Y).
		Int("jumps", s.Tally.Jumps).
		Int("invalid_collisions", s.Stats.Total).
		Int("recovered", s.Stats.Recovered).
		Int("airborne_ticks", s.Airborne).
		Msg("simulation finished")
}
