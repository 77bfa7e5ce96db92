package poisson

// Constant returns a Density that accepts everywhere with radius r.
// On its own it never lets the sampler finish, wrap it in Within.
func Constant(r float64) Density {
	return DensityFunc(func(pos []float64) (float64, bool) {
		return r, true
	})
}

// Within rejects positions outside the half open box [min, max) & defers
// to d everywhere else. Axes beyond len(min) are unconstrained.
func Within(min, max []float64, d Density) Density {
	return DensityFunc(func(pos []float64) (float64, bool) {
		for i := range min {
			if i >= len(pos) || i >= len(max) {
				break
			}
			if pos[i] < min[i] || pos[i] >= max[i] {
				return 0, false
			}
		}
		return d.Radius(pos)
	})
}

// Scaled multiplies every radius returned by d by factor.
func Scaled(d Density, factor float64) Density {
	return DensityFunc(func(pos []float64) (float64, bool) {
		r, ok := d.Radius(pos)
		if !ok {
			return 0, false
		}
		return r * factor, true
	})
}
