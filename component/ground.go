package component

import "time"

// GroundSignals are the independent inputs to the ground confidence score.
type GroundSignals struct {
	Physics  bool
	Position bool
	Velocity bool
}

// GroundCheckResult is recomputed every frame.
type GroundCheckResult struct {
	IsOnGround bool
	Confidence float64
	Signals    GroundSignals
}

// GroundSample is one entry of an actor's ground history.
type GroundSample struct {
	Time       time.Duration
	Confidence float64
	Signals    GroundSignals
}
