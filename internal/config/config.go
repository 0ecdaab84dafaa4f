package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/fractalzoom/internal/anim"
	"github.com/san-kum/fractalzoom/internal/fractal"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickMs  = 33
	DefaultBackend = "cpu"
	DefaultTheme   = "cyberpunk"
	DefaultDataDir = ".fractalzoom"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	MaxIterations uint32           `yaml:"max_iterations"`
	TotalSteps    uint32           `yaml:"total_steps"`
	TickMs        int              `yaml:"tick_ms"`
	Width         uint32           `yaml:"width"`
	Height        uint32           `yaml:"height"`
	Viewport      fractal.Viewport `yaml:"viewport"`
	Backend       string           `yaml:"backend"`
	Workers       int              `yaml:"workers"`
	Theme         string           `yaml:"theme"`
	DataDir       string           `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxIterations: fractal.DefaultMaxIterations,
		TotalSteps:    anim.DefaultTotalSteps,
		TickMs:        DefaultTickMs,
		Width:         fractal.DefaultWidth,
		Height:        fractal.DefaultHeight,
		Viewport:      fractal.DefaultViewport(),
		Backend:       DefaultBackend,
		Theme:         DefaultTheme,
		DataDir:       DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

// Validate checks the values the animator cannot start without.
// max_iterations of zero is allowed; it renders every pixel black.
func (c *Config) Validate() error {
	if c.TotalSteps == 0 {
		return fmt.Errorf("%w: total_steps must be positive", ErrInvalidConfig)
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.TickMs)
	}
	if err := c.Dimensions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Viewport.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Dimensions() fractal.Dimensions {
	return fractal.Dimensions{Width: c.Width, Height: c.Height}
}

func (c *Config) TickDuration() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c *Config) AnimatorConfig() anim.Config {
	return anim.Config{
		Dimensions:    c.Dimensions(),
		MaxIterations: c.MaxIterations,
		TotalSteps:    c.TotalSteps,
		TickDuration:  c.TickDuration(),
	}
}

// ApplyPreset copies a preset's viewport and, when set, its iteration budget.
func (c *Config) ApplyPreset(p *Preset) {
	c.Viewport = p.Viewport
	if p.MaxIterations > 0 {
		c.MaxIterations = p.MaxIterations
	}
}
