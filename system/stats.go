package system

import "github.com/milk9111/platformer/component"

// Stats counts invalid landings for one resolver. Counters only grow until
// Reset is called.
type Stats struct {
	Total          int
	Velocity       int
	Overlap        int
	Position       int
	Movement       int
	Recovered      int
	RecoveryFailed int
}

func (s *Stats) record(failed component.Checks, recovered bool) {
	s.Total++
	for _, c := range failed.List() {
		switch c {
		case component.CheckVelocity:
			s.Velocity++
		case component.CheckOverlap:
			s.Overlap++
		case component.CheckPosition:
			s.Position++
		case component.CheckMovement:
			s.Movement++
		}
	}
	if recovered {
		s.Recovered++
	} else {
		s.RecoveryFailed++
	}
}

// ByCheck returns the count for a single check.
func (s Stats) ByCheck(c component.Checks) int {
	switch c {
	case component.CheckVelocity:
		return s.Velocity
	case component.CheckOverlap:
		return s.Overlap
	case component.CheckPosition:
		return s.Position
	case component.CheckMovement:
		return s.Movement
	default:
		return 0
	}
}

// Stats returns a copy of the invalid landing counters.
func (r *Resolver) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	return r.stats
}

func (r *Resolver) ResetStats() {
	if r == nil {
		return
	}
	r.stats = Stats{}
}
