package spatial

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func randomPoints(rng *rand.Rand, n, dims int, size float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		p := make([]float64, dims)
		for j := range p {
			p[j] = (rng.Float64()*2 - 1) * size
		}
		out[i] = p
	}
	return out
}

// TestGridFindsAllNeighbours checks the grid never misses a point that sits
// within the search radius, across dimensions & with both query paths.
func TestGridFindsAllNeighbours(t *testing.T) {
	tests := []struct {
		name     string
		dims     int
		points   int
		minR     float64
		search   float64
		worldLen float64
	}{
		{name: "2d dense", dims: 2, points: 500, minR: 1, search: 2.5, worldLen: 20},
		{name: "2d sparse wide search", dims: 2, points: 20, minR: 0.5, search: 30, worldLen: 50},
		{name: "3d", dims: 3, points: 400, minR: 1, search: 3, worldLen: 10},
		{name: "1d", dims: 1, points: 100, minR: 0.2, search: 1, worldLen: 10},
		{name: "4d", dims: 4, points: 300, minR: 2, search: 4, worldLen: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			pts := randomPoints(rng, tt.points, tt.dims, tt.worldLen)

			g := NewGrid(tt.dims, tt.minR)
			for id, p := range pts {
				g.Insert(id, p)
			}
			if g.Len() != tt.points {
				t.Fatalf("Len() = %d, want %d", g.Len(), tt.points)
			}

			for q := 0; q < 50; q++ {
				query := randomPoints(rng, 1, tt.dims, tt.worldLen)[0]

				found := map[int]bool{}
				for _, id := range g.Query(nil, query, tt.search) {
					if found[id] {
						t.Fatalf("id %d returned twice", id)
					}
					found[id] = true
				}

				for id, p := range pts {
					if floats.Distance(p, query, 2) <= tt.search && !found[id] {
						t.Fatalf("query %v missed id %d at %v", query, id, p)
					}
				}
			}
		})
	}
}

// TestGridQueryPathsAgree compares walking the window against scanning
// occupied cells.
func TestGridQueryPathsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := randomPoints(rng, 200, 2, 15)

	g := NewGrid(2, 1)
	for id, p := range pts {
		g.Insert(id, p)
	}

	for q := 0; q < 30; q++ {
		query := randomPoints(rng, 1, 2, 15)[0]
		g.cellOf(query, g.centre)
		rings := ringsFor(3, g.CellSize())

		walked := g.walkWindow(nil, int64(rings))
		scanned := g.scanOccupied(nil, float64(rings))
		sort.Ints(walked)
		sort.Ints(scanned)

		if len(walked) != len(scanned) {
			t.Fatalf("walked %d ids, scanned %d", len(walked), len(scanned))
		}
		for i := range walked {
			if walked[i] != scanned[i] {
				t.Fatalf("walked %v != scanned %v", walked, scanned)
			}
		}
	}
}

// TestGridTinyCellsFarNeighbours covers searches spanning more rings than
// the window walk allows, where only the occupied cell scan can answer.
func TestGridTinyCellsFarNeighbours(t *testing.T) {
	tests := []struct {
		name   string
		dims   int
		points [][]float64
		query  []float64
		search float64
		want   []int
	}{
		{
			name:   "1d",
			dims:   1,
			points: [][]float64{{2.0}},
			query:  []float64{0},
			search: 3,
			want:   []int{0},
		},
		{
			name:   "1d out of reach",
			dims:   1,
			points: [][]float64{{2.0}, {9.0}},
			query:  []float64{0},
			search: 3,
			want:   []int{0},
		},
		{
			name:   "2d",
			dims:   2,
			points: [][]float64{{1.5, -1.5}, {-2, 0.5}, {40, 40}},
			query:  []float64{0, 0},
			search: 3,
			want:   []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.dims, 1e-6)
			if ringsFor(tt.search, g.CellSize()) <= maxRings {
				t.Fatalf("search %v does not exceed maxRings", tt.search)
			}
			for id, p := range tt.points {
				g.Insert(id, p)
			}

			got := g.Query(nil, tt.query, tt.search)
			sort.Ints(got)
			if len(got) != len(tt.want) {
				t.Fatalf("Query() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Query() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGridCellSize(t *testing.T) {
	g := NewGrid(2, 1)
	if math.Abs(g.CellSize()-1/math.Sqrt2) > 1e-12 {
		t.Errorf("CellSize() = %v", g.CellSize())
	}

	g3 := NewGrid(3, 3)
	if math.Abs(g3.CellSize()-3/math.Sqrt(3)) > 1e-12 {
		t.Errorf("3d CellSize() = %v", g3.CellSize())
	}
}

func TestGridEmptyAndExtremeQueries(t *testing.T) {
	g := NewGrid(2, 1)
	if got := g.Query(nil, []float64{0, 0}, 10); len(got) != 0 {
		t.Errorf("empty grid returned %v", got)
	}

	g.Insert(0, []float64{0.1, 0.1})
	g.Insert(1, []float64{-5, 3})

	if got := g.Query(nil, []float64{0, 0}, math.Inf(1)); len(got) != 2 {
		t.Errorf("infinite search returned %v", got)
	}
	if got := g.Query(nil, []float64{1e300, -1e300}, 1); len(got) != 0 {
		t.Errorf("far away query returned %v", got)
	}
	if g.Cells() != 2 {
		t.Errorf("Cells() = %d, want 2", g.Cells())
	}
}

func TestLinearReturnsEverything(t *testing.T) {
	l := NewLinear()
	for i := 0; i < 5; i++ {
		l.Insert(i, []float64{float64(i)})
	}

	got := l.Query([]int{-1}, []float64{100}, 0)
	want := []int{-1, 0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Query() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Query() = %v, want %v", got, want)
		}
	}
	if l.Len() != 5 {
		t.Errorf("Len() = %d", l.Len())
	}
}

var (
	_ Index = (*Grid)(nil)
	_ Index = (*Linear)(nil)
)
