// Package config loads the launcher and map table settings.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Maps       MapsConfig       `yaml:"maps"`
	Debug      DebugConfig      `yaml:"debug"`
	Transition TransitionConfig `yaml:"transition"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig holds the virtual viewport size in map units.
type CameraConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

// MapsConfig maps symbolic map names to asset paths.
type MapsConfig struct {
	Default string            `yaml:"default"`
	Paths   map[string]string `yaml:"paths"`
}

type DebugConfig struct {
	Overlay  bool `yaml:"overlay"`
	Hitboxes bool `yaml:"hitboxes"`
}

type TransitionConfig struct {
	FadeFrames int `yaml:"fade_frames"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse defaults: %w", err)
	}
	return &cfg, nil
}

// Load reads the defaults and overlays the yaml file at path, if any.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings the game cannot start without.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0 {
		return fmt.Errorf("config: camera viewport must be positive")
	}
	if _, ok := c.Maps.Paths[c.Maps.Default]; !ok {
		return fmt.Errorf("config: default map %q has no path", c.Maps.Default)
	}
	return nil
}
