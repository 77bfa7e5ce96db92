package spatial

// Linear is the brute force Index: every query returns every stored id.
// It needs no knowledge of radii up front, at the cost of O(n) per query.
type Linear struct {
	ids []int
}

// NewLinear returns an empty brute force index
func NewLinear() *Linear {
	return &Linear{ids: []int{}}
}

// Insert id, the position is irrelevant to us
func (l *Linear) Insert(id int, pos []float64) {
	l.ids = append(l.ids, id)
}

// Query returns everything, in insertion order
func (l *Linear) Query(dst []int, pos []float64, searchRadius float64) []int {
	return append(dst, l.ids...)
}

// Len returns the number of stored ids
func (l *Linear) Len() int {
	return len(l.ids)
}
