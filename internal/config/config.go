package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm   = "bubble"
	DefaultSpeed       = step.DefaultSpeed
	DefaultBaseDelayMS = 100
	DefaultLogLevel    = "info"

	// MaxSize bounds arrays to what a terminal can render as bars.
	MaxSize = 500
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm   string      `yaml:"algorithm"`
	Speed       float64     `yaml:"speed"`
	BaseDelayMS int         `yaml:"base_delay_ms"`
	LogLevel    string      `yaml:"log_level"`
	Array       ArrayConfig `yaml:"array"`
}

type ArrayConfig struct {
	Size  int    `yaml:"size"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
	Shape string `yaml:"shape"`
	Seed  int64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:   DefaultAlgorithm,
		Speed:       DefaultSpeed,
		BaseDelayMS: DefaultBaseDelayMS,
		LogLevel:    DefaultLogLevel,
		Array: ArrayConfig{
			Size:  array.DefaultSize,
			Min:   array.DefaultMin,
			Max:   array.DefaultMax,
			Shape: string(array.ShapeRandom),
		},
	}
}

// Load reads a yaml file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidConfig, c.Speed)
	}
	if c.BaseDelayMS < 0 {
		return fmt.Errorf("%w: base_delay_ms must not be negative, got %d", ErrInvalidConfig, c.BaseDelayMS)
	}
	if c.Array.Size > MaxSize {
		return fmt.Errorf("%w: array size %d exceeds %d", ErrInvalidConfig, c.Array.Size, MaxSize)
	}
	if _, err := c.ArraySpec(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) ArraySpec() (array.Spec, error) {
	shape, err := array.ParseShape(c.Array.Shape)
	if err != nil {
		return array.Spec{}, err
	}
	spec := array.Spec{Size: c.Array.Size, Min: c.Array.Min, Max: c.Array.Max, Shape: shape}
	if err := spec.Validate(); err != nil {
		return array.Spec{}, err
	}
	return spec, nil
}

// GeneratorSeed returns the configured seed, or a time-based one when unset.
func (c *Config) GeneratorSeed() int64 {
	if c.Array.Seed != 0 {
		return c.Array.Seed
	}
	return time.Now().UnixNano()
}

func (c *Config) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMS) * time.Millisecond
}
