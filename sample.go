package poisson

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sample runs a single sampling pass from seed using an rng seeded from
// cfg.Seed. See Generator.Generate.
func Sample(cfg *Config, seed []float64, d Density) ([][]float64, error) {
	if len(seed) == 0 {
		return nil, ErrNoDimensions
	}
	g, err := New(cfg, d, nil)
	if err != nil {
		return nil, err
	}
	return g.Generate(seed), nil
}

// Sample2D is Sample for the plane.
//
//	pts, err := poisson.Sample2D(&poisson.Config{Attempts: 12, MinRadius: 0.05, MaxRadius: 0.1}, r2.Vec{X: 0.5, Y: 0.5},
//		func(p r2.Vec) (float64, bool) {
//			// bound check to avoid sampling forever
//			if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
//				return 0, false
//			}
//			return 0.05 + 0.05*p.X, true
//		})
func Sample2D(cfg *Config, seed r2.Vec, fn func(r2.Vec) (float64, bool)) ([]r2.Vec, error) {
	d := DensityFunc(func(pos []float64) (float64, bool) {
		return fn(r2.Vec{X: pos[0], Y: pos[1]})
	})

	raw, err := Sample(cfg, []float64{seed.X, seed.Y}, d)
	if err != nil {
		return nil, err
	}

	out := make([]r2.Vec, len(raw))
	for i, p := range raw {
		out[i] = r2.Vec{X: p[0], Y: p[1]}
	}
	return out, nil
}

// Sample3D is Sample for three dimensions.
func Sample3D(cfg *Config, seed r3.Vec, fn func(r3.Vec) (float64, bool)) ([]r3.Vec, error) {
	d := DensityFunc(func(pos []float64) (float64, bool) {
		return fn(r3.Vec{X: pos[0], Y: pos[1], Z: pos[2]})
	})

	raw, err := Sample(cfg, []float64{seed.X, seed.Y, seed.Z}, d)
	if err != nil {
		return nil, err
	}

	out := make([]r3.Vec, len(raw))
	for i, p := range raw {
		out[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return out, nil
}
