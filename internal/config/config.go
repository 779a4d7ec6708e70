// Package config loads render configuration from a YAML file: camera
// geometry, the recursion budget and render mode, and the scene file to
// render.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML document shape.
type Config struct {
	Scene  string       `yaml:"scene"`
	Output string       `yaml:"output"`
	Camera CameraConfig `yaml:"camera"`
	Render RenderConfig `yaml:"render"`
}

// CameraConfig mirrors raytracer.CameraOptions with optional fields; a
// zero Fov or an absent from/to leaves the caller's default in place.
type CameraConfig struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Fov    float64     `yaml:"fov"`
	From   *Vec3Config `yaml:"from"`
	To     *Vec3Config `yaml:"to"`
}

// Vec3Config is a YAML-friendly 3-vector.
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// RenderConfig mirrors raytracer.RenderOptions.
type RenderConfig struct {
	Depth int    `yaml:"depth"`
	Mode  string `yaml:"mode"`
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Scene == "" {
		return nil, fmt.Errorf("config: %s: scene is required", path)
	}
	if cfg.Camera.Width <= 0 || cfg.Camera.Height <= 0 {
		return nil, fmt.Errorf("config: %s: camera.width and camera.height must be positive", path)
	}
	return &cfg, nil
}
