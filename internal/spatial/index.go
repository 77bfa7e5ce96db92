// Package spatial holds neighbour lookup strategies for accepted samples.
//
// An Index only ever answers "which ids might be close to here"; callers do
// the exact distance checks themselves. Results are always a superset of the
// points within searchRadius, never a subset.
package spatial

// Index maps positions to arena ids.
type Index interface {
	// Insert records that id sits at pos. pos must not be modified afterwards.
	Insert(id int, pos []float64)

	// Query appends to dst the ids of every stored point that could lie within
	// searchRadius of pos & returns the extended slice.
	Query(dst []int, pos []float64, searchRadius float64) []int

	// Len returns the number of stored ids
	Len() int
}
