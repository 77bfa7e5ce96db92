// Package config provides configuration loading for the example program.
package config

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	poisson "github.com/Nathan-M-code/dynamic-poisson-sampling"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds everything the example program needs.
type Config struct {
	Dims    int            `yaml:"dims"`
	Seed    int64          `yaml:"seed"`
	Sampler poisson.Config `yaml:"sampler"`
	Noise   NoiseConfig    `yaml:"noise"`
	Plot    PlotConfig     `yaml:"plot"`
	Output  OutputConfig   `yaml:"output"`
}

// NoiseConfig describes the density field.
type NoiseConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Depth     float64 `yaml:"depth"` // 3D only
	Frequency float64 `yaml:"frequency"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	Cutoff    float64 `yaml:"cutoff"` // 2D only
}

// PlotConfig describes the rendered image.
type PlotConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	PointRadius    float64 `yaml:"point_radius"`
	Background     bool    `yaml:"background"`
	Cells          bool    `yaml:"cells"`
	CellNeighbours int     `yaml:"cell_neighbours"`
}

// OutputConfig says where results go; empty paths are skipped.
type OutputConfig struct {
	PNG string `yaml:"png"`
	CSV string `yaml:"csv"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	return Load("")
}

// Load reads the embedded defaults & then overlays the file at path (if
// given). Only keys present in the file are overwritten.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing embedded defaults")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config file")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the config can't be used.
func (c *Config) Validate() error {
	if c.Dims != 2 && c.Dims != 3 {
		return errors.Errorf("dims must be 2 or 3, got %d", c.Dims)
	}
	if err := c.Sampler.Validate(); err != nil {
		return errors.Wrap(err, "sampler")
	}
	if c.Noise.Width <= 0 || c.Noise.Height <= 0 || (c.Dims == 3 && c.Noise.Depth <= 0) {
		return errors.New("noise extent must be positive")
	}
	if c.Noise.MinRadius <= 0 || c.Noise.MaxRadius <= 0 {
		// a zero radius anywhere would be rejected & could strand the seed
		return errors.New("noise radii must be positive")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return errors.New("plot size must be positive")
	}
	return nil
}

// WriteYAML saves the config to path
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "writing config file")
}
