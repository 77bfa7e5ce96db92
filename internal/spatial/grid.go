package spatial

import (
	"math"

	"github.com/Nathan-M-code/dynamic-poisson-sampling/internal/encoding"
)

// maxRings bounds ring counts before we give up on walking the window & just
// scan occupied cells instead.
const maxRings = 1 << 20

// Grid is a hashed N dimensional grid. Only occupied cells are stored so the
// domain needn't be known in advance.
//
// With cellSize = minRadius / sqrt(N) a cell's diagonal equals minRadius, so
// under the densest legal packing a cell holds at most one point. Points with
// smaller radii are still handled, cells simply get fuller.
type Grid struct {
	dims     int
	cellSize float64
	cells    map[string][]int
	count    int

	// scratch space reused between queries
	centre []int64
	offset []int64
	cursor []int64
}

// NewGrid returns a grid sized for the given minimum radius in dims dimensions.
func NewGrid(dims int, minRadius float64) *Grid {
	return NewGridWithCellSize(dims, minRadius/math.Sqrt(float64(dims)))
}

// NewGridWithCellSize returns a grid with an explicit cell edge length.
func NewGridWithCellSize(dims int, cellSize float64) *Grid {
	return &Grid{
		dims:     dims,
		cellSize: cellSize,
		cells:    map[string][]int{},
		centre:   make([]int64, dims),
		offset:   make([]int64, dims),
		cursor:   make([]int64, dims),
	}
}

// CellSize returns the edge length of a cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// Cells returns how many cells are occupied
func (g *Grid) Cells() int {
	return len(g.cells)
}

// Len returns the number of stored ids
func (g *Grid) Len() int {
	return g.count
}

// Insert files id under the cell containing pos.
func (g *Grid) Insert(id int, pos []float64) {
	coords := make([]int64, g.dims)
	g.cellOf(pos, coords)
	key := encoding.CellKey(coords)
	g.cells[key] = append(g.cells[key], id)
	g.count++
}

// Query appends every id whose cell is within ceil(searchRadius / cellSize)
// rings of the cell holding pos.
func (g *Grid) Query(dst []int, pos []float64, searchRadius float64) []int {
	if len(g.cells) == 0 {
		return dst
	}

	g.cellOf(pos, g.centre)
	rings := ringsFor(searchRadius, g.cellSize)

	if rings > maxRings || windowExceeds(rings, g.dims, len(g.cells)) {
		return g.scanOccupied(dst, exactRings(searchRadius, g.cellSize))
	}
	return g.walkWindow(dst, int64(rings))
}

// walkWindow visits every cell of the (2r+1)^N window around centre.
func (g *Grid) walkWindow(dst []int, rings int64) []int {
	for i := range g.offset {
		g.offset[i] = -rings
	}

	for {
		for i := range g.cursor {
			g.cursor[i] = g.centre[i] + g.offset[i]
		}
		dst = append(dst, g.cells[encoding.CellKey(g.cursor)]...)

		// odometer increment over offsets
		axis := 0
		for ; axis < g.dims; axis++ {
			g.offset[axis]++
			if g.offset[axis] <= rings {
				break
			}
			g.offset[axis] = -rings
		}
		if axis == g.dims {
			return dst
		}
	}
}

// scanOccupied checks each stored cell against the window, used when the
// window holds more cells than we have occupied. rings is not capped, so
// cells far beyond maxRings are still compared correctly.
func (g *Grid) scanOccupied(dst []int, rings float64) []int {
	for key, ids := range g.cells {
		coords := encoding.FromCellKey(key)
		inside := true
		for i, c := range coords {
			if math.Abs(float64(c)-float64(g.centre[i])) > rings {
				inside = false
				break
			}
		}
		if inside {
			dst = append(dst, ids...)
		}
	}
	return dst
}

// cellOf writes the integer cell co-ords of pos into dst.
func (g *Grid) cellOf(pos []float64, dst []int64) {
	for i := 0; i < g.dims; i++ {
		dst[i] = clampCell(math.Floor(pos[i] / g.cellSize))
	}
}

// clampCell converts to int64 without wrapping for huge or infinite values.
func clampCell(v float64) int64 {
	const limit = float64(1 << 62)
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return 1 << 62
	case v < -limit:
		return -(1 << 62)
	}
	return int64(v)
}

// ringsFor returns ceil(searchRadius / cellSize), capped just above maxRings.
func ringsFor(searchRadius, cellSize float64) int {
	r := math.Ceil(searchRadius / cellSize)
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > maxRings {
		return maxRings + 1
	}
	return int(r)
}

// exactRings returns ceil(searchRadius / cellSize) without a cap; NaN or
// negative input gives 0.
func exactRings(searchRadius, cellSize float64) float64 {
	r := math.Ceil(searchRadius / cellSize)
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	return r
}

// windowExceeds returns if (2r+1)^dims > limit.
func windowExceeds(rings, dims, limit int) bool {
	side := 2*rings + 1
	total := 1
	for i := 0; i < dims; i++ {
		total *= side
		if total > limit {
			return true
		}
	}
	return false
}
