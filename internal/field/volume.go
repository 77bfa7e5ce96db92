package field

import (
	"github.com/ojrac/opensimplex-go"
)

// VolumeConfig outlines a 3D noise volume.
type VolumeConfig struct {
	Size      [3]float64 // extent along x, y, z starting at the origin
	Frequency float64
	Seed      int64
	MinRadius float64
	MaxRadius float64
}

// Volume evaluates noise on demand, there's no sense rasterising 3D.
type Volume struct {
	cfg   VolumeConfig
	noise opensimplex.Noise
}

// NewVolume returns a volume density field
func NewVolume(cfg VolumeConfig) *Volume {
	return &Volume{cfg: cfg, noise: opensimplex.NewNormalized(cfg.Seed)}
}

// Bounds returns the sampling domain as [min, max) per axis
func (v *Volume) Bounds() ([]float64, []float64) {
	return []float64{0, 0, 0}, []float64{v.cfg.Size[0], v.cfg.Size[1], v.cfg.Size[2]}
}

// Value returns the normalised noise at pos
func (v *Volume) Value(pos []float64) float64 {
	f := v.cfg.Frequency
	return v.noise.Eval3(
		pos[0]/v.cfg.Size[0]*f,
		pos[1]/v.cfg.Size[1]*f,
		pos[2]/v.cfg.Size[2]*f,
	)
}

// Radius satisfies poisson.Density, rejecting anything outside the volume.
func (v *Volume) Radius(pos []float64) (float64, bool) {
	if len(pos) < 3 {
		return 0, false
	}
	for i := 0; i < 3; i++ {
		if !(pos[i] >= 0 && pos[i] < v.cfg.Size[i]) { // also catches NaN
			return 0, false
		}
	}
	return v.cfg.MinRadius + v.Value(pos)*(v.cfg.MaxRadius-v.cfg.MinRadius), true
}
