package diagnostics

import (
	"context"
	"fmt"
	"sync"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/system"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/milk9111/platformer/diagnostics"

// Tally is a snapshot of what an Observer has seen.
type Tally struct {
	Jumps          int
	JumpsByReason  map[string]int
	Invalid        int
	InvalidByCheck map[string]int
	Unrecovered    int
}

// Observer logs and counts physics notifications. Counters go to the global
// OTel meter unless another meter is supplied; with no provider configured
// they are no-ops.
type Observer struct {
	logger zerolog.Logger

	jumps   metric.Int64Counter
	invalid metric.Int64Counter

	mu    sync.Mutex
	tally Tally
}

var _ system.Observer = (*Observer)(nil)

// NewObserver creates the counters on meter, or on the global meter when
// meter is nil.
func NewObserver(logger zerolog.Logger, meter metric.Meter) (*Observer, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}
	o := &Observer{
		logger: logger,
		tally:  newTally(),
	}

	var err error
	o.jumps, err = meter.Int64Counter(
		"platformer.jumps",
		metric.WithDescription("Jumps executed, by ground permission"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating jumps counter: %w", err)
	}

	o.invalid, err = meter.Int64Counter(
		"platformer.collisions.invalid",
		metric.WithDescription("Landings rejected by validation, by failed check"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating invalid collision counter: %w", err)
	}

	return o, nil
}

func newTally() Tally {
	return Tally{
		JumpsByReason:  map[string]int{},
		InvalidByCheck: map[string]int{},
	}
}

func (o *Observer) OnJumpSuccess(a *component.Actor, d system.JumpDecision) {
	if o == nil {
		return
	}
	o.jumps.Add(context.Background(), 1, metric.WithAttributes(attribute.String("reason", d.Reason)))

	o.mu.Lock()
	o.tally.Jumps++
	o.tally.JumpsByReason[d.Reason]++
	o.mu.Unlock()

	evt := o.logger.Debug().Str("reason", d.Reason)
	if a != nil {
		evt = evt.Float64("x", a.Position.X).Float64("y", a.Position.Y).Float64("vy", a.Velocity.Y)
	}
	evt.Msg("jump")
}

func (o *Observer) OnInvalidCollision(c system.InvalidCollision) {
	if o == nil {
		return
	}
	checks := c.Failed.List()

	o.mu.Lock()
	o.tally.Invalid++
	if !c.Recovered {
		o.tally.Unrecovered++
	}
	for _, check := range checks {
		o.tally.InvalidByCheck[check.String()]++
	}
	o.mu.Unlock()

	for _, check := range checks {
		o.invalid.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String("check", check.String()),
			attribute.Bool("recovered", c.Recovered),
		))
	}

	level := zerolog.InfoLevel
	if !c.Recovered {
		level = zerolog.ErrorLevel
	}
	o.logger.WithLevel(level).
		Str("failed", c.Failed.String()).
		Bool("recovered", c.Recovered).
		Float64("before_y", c.Before.Position.Y).
		Float64("after_y", c.After.Position.Y).
		Float64("platform_top", c.Obstacle.Top()).
		Msg("invalid collision")
}

// Tally returns a copy of the counts seen so far.
func (o *Observer) Tally() Tally {
	if o == nil {
		return newTally()
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	out := o.tally
	out.JumpsByReason = make(map[string]int, len(o.tally.JumpsByReason))
	for k, v := range o.tally.JumpsByReason {
		out.JumpsByReason[k] = v
	}
	out.InvalidByCheck = make(map[string]int, len(o.tally.InvalidByCheck))
	for k, v := range o.tally.InvalidByCheck {
		out.InvalidByCheck[k] = v
	}
	return out
}
