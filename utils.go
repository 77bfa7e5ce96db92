package poisson

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// calculateDist euclidean distance between a & b.
func calculateDist(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// offset writes origin + dir * dist into dst
func offset(dst, origin, dir []float64, dist float64) []float64 {
	return floats.AddScaledTo(dst, origin, dist, dir)
}

// validRadius returns if r can be used as an exclusion radius
func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

// maxf returns the highest of two floats
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
