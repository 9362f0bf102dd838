// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// TerrainConfig holds the heightmap, textures and mesh scaling.
type TerrainConfig struct {
	Heightmap      string  `yaml:"heightmap"`
	DiffuseTexture string  `yaml:"diffuse_texture"`
	BumpTexture    string  `yaml:"bump_texture"`
	CellSpacing    float32 `yaml:"cell_spacing"`
	HeightScale    float32 `yaml:"height_scale"`
	HeightDamping  float32 `yaml:"height_damping"`
	StrictNumerics bool    `yaml:"strict_numerics"`
}

// CameraConfig holds the initial camera pose and fly controls.
type CameraConfig struct {
	Position         [3]float32 `yaml:"position"`
	RotationDeg      [3]float32 `yaml:"rotation_deg"` // pitch, yaw, roll
	FOVDeg           float32    `yaml:"fov_deg"`
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
	MoveSpeed        float32    `yaml:"move_speed"`
	BoostFactor      float32    `yaml:"boost_factor"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"` // radians per mouse count
	GroundClamp      bool       `yaml:"ground_clamp"`
	EyeHeight        float32    `yaml:"eye_height"`
}

// LightConfig holds the fixed directional light.
type LightConfig struct {
	Diffuse   [4]float32 `yaml:"diffuse"`
	Direction [3]float32 `yaml:"direction"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1920,
			Height:     1080,
			Fullscreen: false,
			VSync:      false,
			FPSLimit:   0,
		},
		Terrain: TerrainConfig{
			Heightmap:      "resource/heightmap.bmp",
			DiffuseTexture: "resource/terrain.png",
			BumpTexture:    "resource/terrain_bump.png",
			CellSpacing:    32,
			HeightScale:    8,
			HeightDamping:  15,
		},
		Camera: CameraConfig{
			Position:         [3]float32{500, 75, 400},
			RotationDeg:      [3]float32{20, 30, 0},
			FOVDeg:           72,
			Near:             1,
			Far:              100000,
			MoveSpeed:        1.5,
			BoostFactor:      5,
			MouseSensitivity: 0.001,
			GroundClamp:      false,
			EyeHeight:        10,
		},
		Light: LightConfig{
			Diffuse:   [4]float32{0.82, 0.82, 0.82, 1},
			Direction: [3]float32{0, -1, 0},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the demo cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Terrain.Heightmap == "" {
		return fmt.Errorf("%w: terrain.heightmap is empty", ErrInvalidConfig)
	}
	if c.Terrain.CellSpacing <= 0 {
		return fmt.Errorf("%w: terrain.cell_spacing %v", ErrInvalidConfig, c.Terrain.CellSpacing)
	}
	if c.Terrain.HeightDamping <= 0 {
		return fmt.Errorf("%w: terrain.height_damping %v", ErrInvalidConfig, c.Terrain.HeightDamping)
	}
	if c.Camera.FOVDeg <= 0 || c.Camera.FOVDeg >= 180 {
		return fmt.Errorf("%w: camera.fov_deg %v", ErrInvalidConfig, c.Camera.FOVDeg)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip range %v..%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	}
	return nil
}
