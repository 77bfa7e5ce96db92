package voronoi

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// based on
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
//
// + edge ordering & nearest neighbour pruning so we can overlay a few
// thousand samples without going quadratic

// Cell is the region of the plane closer to Center than any other sample.
type Cell struct {
	Center model2d.Coord
	Edges  []*model2d.Segment
}

// Diagram is a set of voronoi cells
type Diagram []*Cell

// FromPoints converts 2D sample positions to coords, extra axes are dropped.
func FromPoints(pts [][]float64) []model2d.Coord {
	out := make([]model2d.Coord, 0, len(pts))
	for _, p := range pts {
		if len(p) < 2 {
			continue
		}
		out = append(out, model2d.Coord{X: p[0], Y: p[1]})
	}
	return out
}

// Cells computes the voronoi cells for a list of coordinates, assuming they
// are all contained within the bounding box.
//
// Each cell is only clipped against its nearest `neighbours` coords (all of
// them if neighbours <= 0). Poisson disc samples are evenly spread so a
// couple of dozen neighbours is plenty to get exact cells.
//
// The resulting cells may be slightly misaligned, ie. adjacent edges'
// coordinates may differ due to rounding errors. See Diagram.Repair().
func Cells(min, max model2d.Coord, coords []model2d.Coord, neighbours int) Diagram {
	var tree *model2d.CoordTree
	if neighbours > 0 && neighbours < len(coords) {
		tree = model2d.NewCoordTree(coords)
	}

	cells := make([]*Cell, len(coords))
	for i, c := range coords {
		others := coords
		if tree != nil {
			// +1 as c is its own nearest neighbour
			others = tree.KNN(neighbours+1, c)
		}

		constraints := model2d.NewConvexPolytopeRect(min, max)
		for _, c1 := range others {
			if c == c1 {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}
		cells[i] = &Cell{
			Center: c,
			Edges:  constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}

// Repair merges nearly identical coordinates to make a well-connected graph
// & orders each cell's edges so they run head to tail.
func (d Diagram) Repair(epsilon float64) {
	verts := d.Vertices()
	if len(verts) == 0 {
		return
	}
	mapping := snapVertices(verts, epsilon)

	for _, cell := range d {
		starts := map[model2d.Coord]*model2d.Segment{}

		for i := 0; i < len(cell.Edges); i++ {
			edge := cell.Edges[i]
			for j, c := range edge {
				edge[j] = mapping[c]
			}
			if edge[0] == edge[1] {
				// this was almost a singular edge
				essentials.UnorderedDelete(&cell.Edges, i)
				i--
			} else {
				starts[edge[0]] = edge
			}
		}
		if len(cell.Edges) == 0 {
			continue
		}

		// now to sort the edges
		newOrder := make([]*model2d.Segment, 0, len(cell.Edges))
		newOrder = append(newOrder, cell.Edges[0])
		for len(newOrder) < len(cell.Edges) {
			next, ok := starts[newOrder[len(newOrder)-1][1]]
			if !ok {
				break
			}
			newOrder = append(newOrder, next)
		}

		if len(newOrder) == len(cell.Edges) {
			cell.Edges = newOrder // same edges, re-ordered
		}
	}
}

// Vertices returns each distinct edge endpoint, in the order they are first met.
func (d Diagram) Vertices() []model2d.Coord {
	var out []model2d.Coord
	seen := map[model2d.Coord]struct{}{}
	for _, cell := range d {
		for _, edge := range cell.Edges {
			for _, v := range edge {
				if _, ok := seen[v]; ok {
					continue
				}
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	return out
}

// snapVertices maps each vertex onto the first vertex met within epsilon of
// it. Representatives map onto themselves.
func snapVertices(verts []model2d.Coord, epsilon float64) map[model2d.Coord]model2d.Coord {
	tree := model2d.NewCoordTree(verts)
	snapped := make(map[model2d.Coord]model2d.Coord, len(verts))
	for _, v := range verts {
		if _, done := snapped[v]; done {
			continue
		}
		snapped[v] = v
		for _, n := range withinDistance(tree, v, epsilon, len(verts)) {
			if _, done := snapped[n]; !done {
				snapped[n] = v
			}
		}
	}
	return snapped
}

// withinDistance returns the coords of tree no further than epsilon from c.
// The KNN window doubles until some result lands outside epsilon or the
// whole tree (size total) has been asked for.
func withinDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64, total int) []model2d.Coord {
	for k := 4; ; k *= 2 {
		if k > total {
			k = total
		}
		near := tree.KNN(k, c)

		inside := near[:0:0]
		for _, n := range near {
			if n.Dist(c) <= epsilon {
				inside = append(inside, n)
			}
		}
		if len(inside) < len(near) || len(near) < k || k == total {
			return inside
		}
	}
}
