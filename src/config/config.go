// Package config loads shapecheck settings from a yaml file, with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Containment strategies.
const (
	// ContainmentExact tests rectangles by planar area and cuboids against
	// their face planes.
	ContainmentExact = "exact"
	// ContainmentBounds tests against the axis-aligned bounding box of the
	// defining points.
	ContainmentBounds = "bounds"
)

// Cuboid validation forms.
const (
	// CuboidOrthogonal requires the edges from A to B, C and D to be
	// mutually perpendicular.
	CuboidOrthogonal = "orthogonal"
	// CuboidFaceHeight requires A, B, C to be a corner of an axis-parallel
	// base face with D directly above one of its four corners.
	CuboidFaceHeight = "face-height"
)

// Config holds all shapecheck configuration.
type Config struct {
	// Coordinate file, one point per line.
	Input string `yaml:"input"`

	// Report format: text or yaml.
	Format string `yaml:"format"`

	// Containment strategy: exact or bounds.
	Containment string `yaml:"containment"`

	// Cuboid validation form: orthogonal or face-height.
	Cuboid string `yaml:"cuboid"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:       "coordinates.txt",
		Format:      "text",
		Containment: ContainmentExact,
		Cuboid:      CuboidOrthogonal,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the yaml file at path over the defaults. A missing file is not
// an error. Values from a .env file in the working directory and from the
// environment take precedence. The result is not validated, so callers can
// apply their own overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHAPECHECK_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("SHAPECHECK_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SHAPECHECK_CONTAINMENT"); v != "" {
		c.Containment = v
	}
	if v := os.Getenv("SHAPECHECK_CUBOID"); v != "" {
		c.Cuboid = v
	}
	if v := os.Getenv("SHAPECHECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("config: format must be text or yaml, got %q", c.Format)
	}
	switch c.Containment {
	case ContainmentExact, ContainmentBounds:
	default:
		return fmt.Errorf("config: containment must be %s or %s, got %q", ContainmentExact, ContainmentBounds, c.Containment)
	}
	switch c.Cuboid {
	case CuboidOrthogonal, CuboidFaceHeight:
	default:
		return fmt.Errorf("config: cuboid must be %s or %s, got %q", CuboidOrthogonal, CuboidFaceHeight, c.Cuboid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Input == "" {
		return errors.New("config: input must not be empty")
	}
	return nil
}
