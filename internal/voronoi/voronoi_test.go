package voronoi

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model2d"
)

func cellBounds(c *Cell) (model2d.Coord, model2d.Coord) {
	min := model2d.Coord{X: math.Inf(1), Y: math.Inf(1)}
	max := model2d.Coord{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, e := range c.Edges {
		for _, p := range e {
			min = min.Min(p)
			max = max.Max(p)
		}
	}
	return min, max
}

func TestCellsQuadrants(t *testing.T) {
	coords := FromPoints([][]float64{{25, 25}, {75, 25}, {25, 75}, {75, 75}})

	for _, neighbours := range []int{0, 2} {
		d := Cells(model2d.Coord{}, model2d.Coord{X: 100, Y: 100}, coords, neighbours)
		d.Repair(1e-6)

		if len(d) != 4 {
			t.Fatalf("got %d cells", len(d))
		}
		for _, c := range d {
			min, max := cellBounds(c)
			wantMin := model2d.Coord{X: c.Center.X - 25, Y: c.Center.Y - 25}
			wantMax := model2d.Coord{X: c.Center.X + 25, Y: c.Center.Y + 25}
			if min.Dist(wantMin) > 1e-6 || max.Dist(wantMax) > 1e-6 {
				t.Errorf("neighbours %d: cell %v spans %v - %v", neighbours, c.Center, min, max)
			}

			// edges close the loop: every vertex is shared by two edges
			uses := map[model2d.Coord]int{}
			for _, e := range c.Edges {
				uses[e[0]]++
				uses[e[1]]++
			}
			for v, n := range uses {
				if n != 2 {
					t.Errorf("cell %v vertex %v used by %d edges", c.Center, v, n)
				}
			}
		}
	}
}

func TestRepairMergesVertices(t *testing.T) {
	coords := FromPoints([][]float64{{10, 10}, {30, 12}, {18, 30}, {40, 35}, {5, 40}})
	d := Cells(model2d.Coord{}, model2d.Coord{X: 50, Y: 50}, coords, 0)
	before := len(d.Vertices())
	d.Repair(1e-6)
	after := len(d.Vertices())

	if after > before {
		t.Errorf("repair added vertices: %d -> %d", before, after)
	}
	for _, a := range d.Vertices() {
		for _, b := range d.Vertices() {
			if a != b && a.Dist(b) < 1e-6 {
				t.Fatalf("vertices %v & %v not merged", a, b)
			}
		}
	}
}

func TestFromPointsSkipsShort(t *testing.T) {
	got := FromPoints([][]float64{{1, 2, 3}, {4}, {5, 6}})
	if len(got) != 2 || got[0] != (model2d.Coord{X: 1, Y: 2}) || got[1] != (model2d.Coord{X: 5, Y: 6}) {
		t.Errorf("FromPoints() = %v", got)
	}
}

func TestRepairEmpty(t *testing.T) {
	Diagram{}.Repair(1)
}

func TestWithinDistance(t *testing.T) {
	var coords []model2d.Coord
	for i := 0; i < 20; i++ {
		coords = append(coords, model2d.Coord{X: float64(i) * 0.1})
	}
	tree := model2d.NewCoordTree(coords)

	tests := []struct {
		name    string
		epsilon float64
		want    int
	}{
		{name: "only itself", epsilon: 0.01, want: 1},
		{name: "a few", epsilon: 0.25, want: 3},
		{name: "more than the first window", epsilon: 0.95, want: 10},
		{name: "everything", epsilon: 100, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withinDistance(tree, coords[0], tt.epsilon, len(coords))
			if len(got) != tt.want {
				t.Errorf("got %d coords, want %d: %v", len(got), tt.want, got)
			}
			for _, c := range got {
				if c.Dist(coords[0]) > tt.epsilon {
					t.Errorf("%v is outside %v", c, tt.epsilon)
				}
			}
		})
	}
}
