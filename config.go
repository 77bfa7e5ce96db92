package poisson

import (
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNilDensity implies no Density was given
	ErrNilDensity = errors.New("density must not be nil")

	// ErrNegativeAttempts implies Attempts < 0
	ErrNegativeAttempts = errors.New("attempts must not be negative")

	// ErrInvalidBounds implies radius bounds that can't describe any radius
	ErrInvalidBounds = errors.New("invalid radius bounds")

	// ErrNoDimensions implies a seed position with no axes
	ErrNoDimensions = errors.New("seed position has no dimensions")
)

// Config holds settings for a sampling run.
// Only Attempts is really required, the rest are optional.
type Config struct {
	// Attempts is the number of candidates tried around each active point
	// before it is retired ("k"). Typically 10 to 30; higher values pack
	// more tightly but run slower. 0 yields just the seed point.
	Attempts int `yaml:"attempts"`

	// MinRadius is the smallest radius the Density is expected to return.
	// Setting it (> 0) switches neighbour checks from a linear scan to a
	// hashed grid. Radii smaller than this are still handled correctly,
	// they only make the grid slower.
	MinRadius float64 `yaml:"min_radius"`

	// MaxRadius is the largest radius the Density is expected to return.
	// Optional even with MinRadius set; the grid also widens its search to
	// the largest radius it has actually seen.
	MaxRadius float64 `yaml:"max_radius"`

	// Seed for the rng built by Sample, Sample2D & Sample3D (random if 0).
	// Ignored by New, which is handed a Random directly.
	Seed int64 `yaml:"seed"`

	// Logger receives a debug summary per run (slog.Default() if nil)
	Logger *slog.Logger `yaml:"-"`
}

// Validate returns an error if the config can't be used.
func (c *Config) Validate() error {
	if c.Attempts < 0 {
		return errors.Wrapf(ErrNegativeAttempts, "got %d", c.Attempts)
	}
	if !validBound(c.MinRadius) || !validBound(c.MaxRadius) {
		return errors.Wrapf(ErrInvalidBounds, "min %v max %v must be finite & non negative", c.MinRadius, c.MaxRadius)
	}
	if c.MinRadius > 0 && c.MaxRadius > 0 && c.MaxRadius < c.MinRadius {
		return errors.Wrapf(ErrInvalidBounds, "max %v is below min %v", c.MaxRadius, c.MinRadius)
	}
	return nil
}

// usesGrid returns if the config allows a grid accelerated neighbour search.
func (c *Config) usesGrid() bool {
	return c.MinRadius > 0
}

// logger returns the configured logger or the default
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// validBound returns if v is usable as a radius bound (0 meaning "unset")
func validBound(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
