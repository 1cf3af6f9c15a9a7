package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bar-ui/dataset"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the optional bar-ui.yaml file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Data   DataConfig   `yaml:"data"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// DataConfig drives the sample generator.
type DataConfig struct {
	Points int     `yaml:"points"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	// Seed 0 means a new series every launch.
	Seed      uint64  `yaml:"seed"`
	NullRatio float64 `yaml:"null_ratio"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Simple Bar Chart Visualization",
			Width:  800,
			Height: 600,
		},
		Data: DataConfig{
			Points: dataset.DefaultCount,
			Min:    dataset.DefaultMin,
			Max:    dataset.DefaultMax,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.decode(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		// empty file
		return nil
	}
	return err
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %gx%g: %w", c.Window.Width, c.Window.Height, ErrInvalidConfig)
	case c.Data.Points < 0:
		return fmt.Errorf("data.points %d: %w", c.Data.Points, ErrInvalidConfig)
	case !(c.Data.Min < c.Data.Max):
		return fmt.Errorf("data.min %g must be below data.max %g: %w", c.Data.Min, c.Data.Max, ErrInvalidConfig)
	case c.Data.NullRatio < 0 || c.Data.NullRatio >= 1:
		return fmt.Errorf("data.null_ratio %g outside [0,1): %w", c.Data.NullRatio, ErrInvalidConfig)
	}
	return nil
}

// Generator builds the sample generator described by c.Data.
func (c *Config) Generator() (*dataset.Generator, error) {
	g, err := dataset.NewGenerator(c.Data.Points, c.Data.Min, c.Data.Max, c.Data.Seed)
	if err != nil {
		return nil, err
	}
	g.NullRatio = c.Data.NullRatio
	return g, nil
}
