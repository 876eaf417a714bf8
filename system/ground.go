package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
)

// GroundDetector fuses the physics contact flag with position and velocity
// heuristics into a confidence score.
type GroundDetector struct {
	cfg GroundConfig
}

func NewGroundDetector(cfg GroundConfig) *GroundDetector {
	return &GroundDetector{cfg: cfg}
}

func (g *GroundDetector) Config() GroundConfig {
	if g == nil {
		return DefaultGroundConfig()
	}
	return g.cfg
}

func (g *GroundDetector) SetConfig(cfg GroundConfig) {
	if g == nil {
		return
	}
	g.cfg = cfg
}

// Signals evaluates the three ground signals without touching the actor.
func (g *GroundDetector) Signals(a *component.Actor) component.GroundSignals {
	if a == nil {
		return component.GroundSignals{}
	}
	cfg := g.Config()
	vy := a.Velocity.Y
	signals := component.GroundSignals{
		Physics:  a.IsOnGround,
		Velocity: math.Abs(vy) < cfg.NearZeroVelocity || (vy >= 0 && vy <= cfg.NearZeroVelocity),
	}
	if cfg.PositionHeuristic {
		line := cfg.GroundLine()
		bottom := a.Bottom()
		nearLine := math.Abs(bottom-line) <= cfg.GroundTolerance
		resting := math.Abs(vy) < cfg.NearZeroVelocity && bottom >= line-cfg.MaxJumpHeight
		signals.Position = nearLine || resting
	}
	return signals
}

// Confidence is the weighted fraction of applicable signals that are true.
func (g *GroundDetector) Confidence(s component.GroundSignals) float64 {
	cfg := g.Config()
	var num, den float64
	add := func(weight float64, on bool) {
		den += weight
		if on {
			num += weight
		}
	}
	add(cfg.PhysicsWeight, s.Physics)
	if cfg.PositionHeuristic {
		add(cfg.PositionWeight, s.Position)
	}
	add(cfg.VelocityWeight, s.Velocity)
	if den <= 0 {
		return 0
	}
	return cp.Clamp(num/den, 0, 1)
}

// Check evaluates the actor at session time now. When the result is grounded
// the actor's last contact time moves forward. Every evaluation is appended to
// the actor's history for diagnostics only.
func (g *GroundDetector) Check(a *component.Actor, now time.Duration) component.GroundCheckResult {
	if a == nil || a.Validate() != nil {
		return component.GroundCheckResult{}
	}
	signals := g.Signals(a)
	res := component.GroundCheckResult{
		IsOnGround: signals.Physics || signals.Position,
		Confidence: g.Confidence(signals),
		Signals:    signals,
	}
	if res.IsOnGround {
		a.RecordGroundContact(now)
	}
	if a.GroundHistory == nil {
		a.GroundHistory = component.NewHistory[component.GroundSample](component.GroundHistorySize)
	}
	a.GroundHistory.Push(component.GroundSample{Time: now, Confidence: res.Confidence, Signals: signals})
	return res
}
