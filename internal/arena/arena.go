package arena

// Point is an accepted sample: where it sits & how much room it needs.
// Points are never modified once appended.
type Point struct {
	Pos    []float64
	Radius float64
}

// Arena is append only storage for Points. The ids handed out by Append
// stay valid for the life of the arena; nothing is ever removed.
type Arena struct {
	points []Point
}

// New returns an empty arena
func New() *Arena {
	return &Arena{points: []Point{}}
}

// Append stores p & returns its id
func (a *Arena) Append(p Point) int {
	a.points = append(a.points, p)
	return len(a.points) - 1
}

// Get returns the point with the given id.
// Panics if the id was never issued.
func (a *Arena) Get(id int) Point {
	return a.points[id]
}

// Len returns how many points we hold
func (a *Arena) Len() int {
	return len(a.points)
}

// Positions returns a copy of every position in insertion order.
// The caller owns the returned slices.
func (a *Arena) Positions() [][]float64 {
	out := make([][]float64, len(a.points))
	for i, p := range a.points {
		pos := make([]float64, len(p.Pos))
		copy(pos, p.Pos)
		out[i] = pos
	}
	return out
}
