package poisson

import (
	"fmt"
)

// State of a Generator run.
type State int

const (
	// Empty before a run has started
	Empty State = iota

	// Seeded once the seed point is accepted
	Seeded

	// Expanding while active points remain
	Expanding

	// Terminated once the active list drains (or the seed was rejected)
	Terminated
)

// String returns a human readable state name
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Seeded:
		return "seeded"
	case Expanding:
		return "expanding"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Stats holds generic stats about the most recent run
type Stats struct {
	// candidates proposed around active points (the seed isn't counted)
	Candidates int

	// candidates dropped because the Density rejected them
	RejectedByDensity int

	// candidates dropped because they sat too close to an existing point
	RejectedByNeighbour int

	// points accepted, including the seed
	Accepted int

	// neighbour ids returned by the index & distance checked
	NeighbourChecks int

	// number of active points retired (one per loop iteration)
	Retired int
}

// newStats returns blank Stats
func newStats() *Stats {
	return &Stats{}
}

// AcceptanceRate returns the fraction of candidates that were accepted.
func (s *Stats) AcceptanceRate() float64 {
	if s.Candidates == 0 {
		return 0
	}
	// the seed isn't a candidate
	accepted := s.Accepted - 1
	if accepted < 0 {
		accepted = 0
	}
	return float64(accepted) / float64(s.Candidates)
}
