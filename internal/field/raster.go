// Package field provides noise driven density fields for demos & tests.
package field

import (
	"image"
	"image/color"
	"math"

	"github.com/boljen/go-bitmap"
	"github.com/ojrac/opensimplex-go"
)

// RasterConfig outlines a 2D noise raster.
type RasterConfig struct {
	Width  int // pixels, also the extent of the sampling domain
	Height int

	// Frequency is how many noise "features" span the raster along each axis
	Frequency float64

	Seed int64

	// Radius at noise value 0 & noise value 1 respectively. MaxRadius may be
	// smaller than MinRadius to make bright areas denser.
	MinRadius float64
	MaxRadius float64

	// Cutoff masks out pixels whose noise value is below it, so nothing is
	// placed there (water, say). 0 disables the mask.
	Cutoff float64
}

// Raster holds precomputed noise for a Width x Height area.
// Positions are in pixel units; anything outside the raster is rejected.
type Raster struct {
	cfg    RasterConfig
	values []float64 // normalised noise in [0, 1), row major
	mask   bitmap.Bitmap
	masked int
}

// NewRaster evaluates noise for every pixel of the configured area.
func NewRaster(cfg RasterConfig) *Raster {
	noise := opensimplex.NewNormalized(cfg.Seed)

	r := &Raster{
		cfg:    cfg,
		values: make([]float64, cfg.Width*cfg.Height),
		mask:   bitmap.New(cfg.Width * cfg.Height),
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			nx := float64(x) / float64(cfg.Width) * cfg.Frequency
			ny := float64(y) / float64(cfg.Height) * cfg.Frequency
			v := noise.Eval2(nx, ny)

			i := y*cfg.Width + x
			r.values[i] = v
			if v < cfg.Cutoff {
				r.mask.Set(i, true)
				r.masked++
			}
		}
	}

	return r
}

// Bounds returns the sampling domain as [min, max) per axis
func (r *Raster) Bounds() ([]float64, []float64) {
	return []float64{0, 0}, []float64{float64(r.cfg.Width), float64(r.cfg.Height)}
}

// Value returns the noise value at pixel (x, y), 0 outside the raster.
func (r *Raster) Value(x, y int) float64 {
	if !r.inside(x, y) {
		return 0
	}
	return r.values[y*r.cfg.Width+x]
}

// Masked returns if pixel (x, y) is excluded from sampling.
// Pixels outside the raster are always masked.
func (r *Raster) Masked(x, y int) bool {
	if !r.inside(x, y) {
		return true
	}
	return r.mask.Get(y*r.cfg.Width + x)
}

// MaskedCount returns the number of masked pixels inside the raster
func (r *Raster) MaskedCount() int {
	return r.masked
}

// Radius maps the noise under pos to a radius; satisfies poisson.Density.
func (r *Raster) Radius(pos []float64) (float64, bool) {
	if len(pos) < 2 {
		return 0, false
	}
	// range check on floats first: int() truncates towards zero, so -0.5
	// would otherwise land on pixel 0. This also catches NaN.
	if !(pos[0] >= 0 && pos[0] < float64(r.cfg.Width) && pos[1] >= 0 && pos[1] < float64(r.cfg.Height)) {
		return 0, false
	}

	x, y := int(pos[0]), int(pos[1])
	if r.Masked(x, y) {
		return 0, false
	}

	v := r.values[y*r.cfg.Width+x]
	return r.cfg.MinRadius + v*(r.cfg.MaxRadius-r.cfg.MinRadius), true
}

// Image returns the noise as a grayscale image
func (r *Raster) Image() *image.Gray {
	im := image.NewGray(image.Rect(0, 0, r.cfg.Width, r.cfg.Height))
	for y := 0; y < r.cfg.Height; y++ {
		for x := 0; x < r.cfg.Width; x++ {
			v := r.values[y*r.cfg.Width+x]
			im.SetGray(x, y, color.Gray{Y: uint8(math.Max(0, math.Min(1, v)) * 255)})
		}
	}
	return im
}

// inside returns if (x, y) is a raster pixel
func (r *Raster) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.cfg.Width && y < r.cfg.Height
}
