package poisson

import (
	"github.com/Nathan-M-code/dynamic-poisson-sampling/internal/arena"
	"github.com/Nathan-M-code/dynamic-poisson-sampling/internal/spatial"
)

// spawnMultiplier bounds how far a candidate may land from its parent:
// somewhere in [r, spawnMultiplier * r). It must exceed 2 or a child with
// its parent's radius could never clear the parent's exclusion zone.
const spawnMultiplier = 3.0

// Generator runs variable density poisson disc sampling.
// A Generator may be reused; each call to Generate is an independent run
// that shares nothing with previous runs except the Random it consumes.
// It is not safe for concurrent use.
type Generator struct {
	cfg     *Config
	density Density
	rng     Random

	state State
	stats *Stats

	// per run state, rebuilt by reset()
	dims    int
	points  *arena.Arena
	active  *arena.ActiveList
	index   spatial.Index
	largest float64 // biggest radius accepted so far

	// scratch space reused between candidates
	dir       []float64
	candidate []float64
	near      []int
}

// New creates a Generator given configuration, a Density & a source of
// randomness. If rng is nil one is made from cfg.Seed.
func New(cfg *Config, d Density, rng Random) (*Generator, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if d == nil {
		return nil, ErrNilDensity
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRandom(cfg.Seed)
	}
	return &Generator{
		cfg:     cfg,
		density: d,
		rng:     rng,
		state:   Empty,
		stats:   newStats(),
	}, nil
}

// State returns where the most recent run got to
func (g *Generator) State() State {
	return g.state
}

// Stats returns stats for the most recent run
func (g *Generator) Stats() *Stats {
	return g.stats
}

// Generate samples outward from seed until no active points remain &
// returns every accepted position in the order they were accepted.
//
// The result is empty if the Density rejects the seed (or seed has no axes).
// Every returned slice has len(seed) axes & is owned by the caller.
func (g *Generator) Generate(seed []float64) [][]float64 {
	g.reset(len(seed))

	if !g.seedWith(seed) {
		g.finish()
		return [][]float64{}
	}

	g.state = Expanding
	for g.active.Len() > 0 {
		g.expand()
	}

	g.finish()
	return g.points.Positions()
}

// reset prepares fresh per run state for the given dimensionality
func (g *Generator) reset(dims int) {
	g.state = Empty
	g.stats = newStats()
	g.dims = dims
	g.points = arena.New()
	g.active = arena.NewActiveList()
	g.largest = 0
	g.dir = make([]float64, dims)
	g.candidate = make([]float64, dims)
	g.near = g.near[:0]

	if g.cfg.usesGrid() && dims > 0 {
		g.index = spatial.NewGrid(dims, g.cfg.MinRadius)
	} else {
		g.index = spatial.NewLinear()
	}
}

// seedWith places the first point, returns false if the Density rejects it
func (g *Generator) seedWith(seed []float64) bool {
	if g.dims == 0 {
		return false
	}

	r, ok := g.density.Radius(seed)
	if !ok || !validRadius(r) {
		return false
	}

	pos := make([]float64, g.dims)
	copy(pos, seed)
	g.accept(pos, r)
	g.state = Seeded
	return true
}

// expand picks an active point, gives it its full attempt budget
// & then retires it regardless of how many children it produced.
func (g *Generator) expand() {
	slot := g.pick()
	parent := g.points.Get(g.active.At(slot))

	for i := 0; i < g.cfg.Attempts; i++ {
		g.attempt(parent)
	}

	// children were appended after slot, so slot still refers to parent
	g.active.Remove(slot)
	g.stats.Retired++
}

// pick returns a uniformly random slot in the active list
func (g *Generator) pick() int {
	n := g.active.Len()
	slot := int(g.rng.Uniform(0, float64(n)))
	if slot >= n {
		slot = n - 1
	} else if slot < 0 {
		slot = 0
	}
	return slot
}

// attempt proposes one candidate around parent & accepts it if it fits.
func (g *Generator) attempt(parent arena.Point) {
	g.stats.Candidates++

	dist := g.rng.Uniform(parent.Radius, spawnMultiplier*parent.Radius)
	g.rng.UnitVector(g.dir)
	offset(g.candidate, parent.Pos, g.dir, dist)

	r, ok := g.density.Radius(g.candidate)
	if !ok || !validRadius(r) {
		g.stats.RejectedByDensity++
		return
	}

	if g.conflicts(g.candidate, r) {
		g.stats.RejectedByNeighbour++
		return
	}

	pos := make([]float64, g.dims)
	copy(pos, g.candidate)
	g.accept(pos, r)
}

// conflicts returns if a point of radius r at pos would sit inside the
// exclusion zone of any accepted point. Touching exactly is allowed.
func (g *Generator) conflicts(pos []float64, r float64) bool {
	search := r + maxf(g.cfg.MaxRadius, g.largest)
	g.near = g.index.Query(g.near[:0], pos, search)

	for _, id := range g.near {
		g.stats.NeighbourChecks++
		q := g.points.Get(id)
		if calculateDist(pos, q.Pos) < q.Radius+r {
			return true
		}
	}
	return false
}

// accept records a new point everywhere it needs to be
func (g *Generator) accept(pos []float64, r float64) {
	id := g.points.Append(arena.Point{Pos: pos, Radius: r})
	g.index.Insert(id, pos)
	g.active.Push(id)
	g.largest = maxf(g.largest, r)
	g.stats.Accepted++
}

// finish marks the run complete
func (g *Generator) finish() {
	g.state = Terminated
	g.cfg.logger().Debug("poisson sampling complete",
		"dims", g.dims,
		"points", g.stats.Accepted,
		"candidates", g.stats.Candidates,
		"rejected_density", g.stats.RejectedByDensity,
		"rejected_neighbour", g.stats.RejectedByNeighbour,
		"neighbour_checks", g.stats.NeighbourChecks,
		"grid", g.cfg.usesGrid(),
	)
}
