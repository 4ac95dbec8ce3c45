package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"mesh3d-renderer/internal/math3d"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	Model     string `json:"model"`
	Texture   string `json:"texture"`
	OutputDir string `json:"output_dir"`

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Frames      int `json:"frames"`
	// WebPQuality is accepted for config compatibility but has no effect:
	// frames are encoded with nativewebp, which is lossless.
	WebPQuality int  `json:"webp_quality"`
	Workers     int  `json:"workers"`
	Wireframe   bool `json:"wireframe"`

	// Camera
	Yaw        float64 `json:"yaw"`
	Pitch      float64 `json:"pitch"`
	Distance   float64 `json:"distance"`
	FOV        float64 `json:"fov"`
	Near       float64 `json:"near"`
	Far        float64 `json:"far"`
	Projection string  `json:"projection"` // "perspective" (default) or "ortho"

	// Background color as RGBA bytes.
	Background [4]uint8 `json:"background"`

	// ModelMatrix optionally replaces the automatic fit transform with an
	// explicit column-major 16-element matrix.
	ModelMatrix []float64 `json:"model_matrix"`
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values; call Resolve afterwards to apply defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.ModelMatrix != nil {
		// validate early so a malformed matrix fails at load, not mid-render
		if _, err := math3d.FromSlice(cfg.ModelMatrix); err != nil {
			return Config{}, fmt.Errorf("config: model_matrix in %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Model     string
	Texture   string
	OutputDir string
	Size      int
	Frames    int
	Workers   int
	Wireframe bool
	Ortho     bool
}

// Resolve applies CLI flag overrides and fills remaining empty fields with
// defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Wireframe {
		c.Wireframe = true
	}
	if flags.Ortho {
		c.Projection = "ortho"
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Distance <= 0 {
		c.Distance = 4
	}
	if c.FOV <= 0 {
		c.FOV = 45
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= 0 {
		c.Far = 100
	}
	if c.Projection == "" {
		c.Projection = "perspective"
	}
}
