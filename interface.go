package poisson

// Density tells the sampler how much room a point needs at a given position.
// We only have one question;
// - if a point were placed at pos, what is its exclusion radius?
//
// Returning ok = false rejects the position outright (outside the domain, in
// a lake, whatever the caller likes). A radius that isn't a finite positive
// number is treated as a rejection too.
//
// The sampler only terminates if Density eventually rejects everything outside
// some bounded region. A Density that accepts everywhere will keep the
// sampler running forever, we don't attempt to detect that.
//
// Implementations must not keep or modify pos.
type Density interface {
	Radius(pos []float64) (r float64, ok bool)
}

// DensityFunc adapts a plain function to a Density.
type DensityFunc func(pos []float64) (float64, bool)

// Radius calls f(pos)
func (f DensityFunc) Radius(pos []float64) (float64, bool) {
	return f(pos)
}

// Random is the source of randomness consumed by the sampler.
// Given the same stream of values the sampler makes the same decisions.
type Random interface {
	// Uniform returns a value in [low, high)
	Uniform(low, high float64) float64

	// UnitVector fills dst with a direction of length 1
	UnitVector(dst []float64)
}
