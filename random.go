package poisson

import (
	"math"
	"math/rand"
	"time"
)

// rngSource is the default Random built on math/rand
type rngSource struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed.
// A seed of 0 picks one from the clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &rngSource{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [low, high)
func (r *rngSource) Uniform(low, high float64) float64 {
	v := low + r.rng.Float64()*(high-low)
	if v >= high && high > low {
		// rounding can land us on high
		v = math.Nextafter(high, low)
	}
	return v
}

// UnitVector draws every axis from [-1, 1) & normalises the result.
// An all zero draw (vanishingly unlikely) is redrawn.
func (r *rngSource) UnitVector(dst []float64) {
	for {
		sum := 0.0
		for i := range dst {
			v := r.Uniform(-1, 1)
			dst[i] = v
			sum += v * v
		}
		if sum == 0 {
			if len(dst) == 0 {
				return
			}
			continue
		}

		norm := math.Sqrt(sum)
		for i := range dst {
			dst[i] /= norm
		}
		return
	}
}
