// Package demo runs the bump-mapped terrain demo: it builds the terrain,
// opens the window and drives the frame loop.
package demo

import (
	"fmt"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/bumpterrain/internal/config"
	"github.com/Faultbox/bumpterrain/internal/engine/camera"
	"github.com/Faultbox/bumpterrain/internal/engine/input"
	"github.com/Faultbox/bumpterrain/internal/engine/lighting"
	"github.com/Faultbox/bumpterrain/internal/engine/renderer"
	"github.com/Faultbox/bumpterrain/internal/engine/window"
	"github.com/Faultbox/bumpterrain/internal/logger"
)

// Title is the window title prefix.
const Title = "Bump Terrain"

// Demo is the running demo instance.
type Demo struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	terrain  *Terrain
	camera   *camera.FPSCamera
	controls *camera.FlyControls
	light    lighting.Directional
	captured bool
	log      *zap.Logger
}

// New builds the terrain assets, then creates the window, GL state and
// GPU resources. No window is opened when the assets fail to load.
func New(cfg *config.Config) (*Demo, error) {
	d := &Demo{
		cfg:   cfg,
		light: LightFromConfig(cfg.Light),
		log:   logger.Named("demo"),
	}

	d.log.Info("initializing demo",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	assets, err := LoadAssets(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("loading terrain: %w", err)
	}

	d.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fbw, fbh := d.window.DrawableSize()
	d.renderer, err = renderer.New(renderer.Config{
		Width:      fbw,
		Height:     fbh,
		ClearColor: renderer.DefaultClearColor,
	})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	d.terrain, err = NewTerrain(assets, d.renderer.MaxTextureSize())
	if err != nil {
		d.Close()
		return nil, err
	}

	d.camera = CameraFromConfig(cfg.Camera, fbw, fbh)
	d.controls = ControlsFromConfig(cfg.Camera, d.terrain.Mesh())
	d.input = input.New()

	d.window.CaptureMouse(true)
	d.captured = true

	d.log.Info("demo initialized", zap.Int32("indices", d.terrain.IndexCount()))
	return d, nil
}

// CameraFromConfig creates a camera at the configured pose.
func CameraFromConfig(cfg config.CameraConfig, width, height int) *camera.FPSCamera {
	cam := camera.NewFPSCamera(width, height)
	cam.FOV = cfg.FOVDeg * math.Pi / 180
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.SetPosition(cfg.Position[0], cfg.Position[1], cfg.Position[2])
	cam.SetRotation(cfg.RotationDeg[0], cfg.RotationDeg[1], cfg.RotationDeg[2])
	cam.Update()
	return cam
}

// ControlsFromConfig creates fly controls. ground is used only when the
// ground clamp is enabled.
func ControlsFromConfig(cfg config.CameraConfig, ground camera.Ground) *camera.FlyControls {
	c := camera.NewFlyControls()
	c.MoveSpeed = cfg.MoveSpeed
	c.BoostFactor = cfg.BoostFactor
	c.MouseSensitivity = cfg.MouseSensitivity
	if cfg.GroundClamp {
		c.Ground = ground
		c.EyeHeight = cfg.EyeHeight
	}
	return c
}

// LightFromConfig returns the configured light, falling back to the
// default for an all-zero direction.
func LightFromConfig(cfg config.LightConfig) lighting.Directional {
	l := lighting.Directional{Diffuse: cfg.Diffuse, Direction: cfg.Direction}
	if l.Direction == ([3]float32{}) {
		l.Direction = lighting.Default().Direction
	}
	return l
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (d *Demo) Run() error {
	d.running = true

	stats := newFrameStats(time.Now(), time.Second)
	var limiter <-chan time.Time
	if d.cfg.Graphics.FPSLimit > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(d.cfg.Graphics.FPSLimit))
		defer ticker.Stop()
		limiter = ticker.C
	}

	d.log.Info("starting frame loop")

	for d.running {
		if d.input.Update() {
			d.running = false
			break
		}

		for _, event := range d.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				fbw, fbh := d.window.DrawableSize()
				d.renderer.Resize(fbw, fbh)
				d.camera.SetViewport(fbw, fbh)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_F1 {
					d.captured = !d.captured
					d.window.CaptureMouse(d.captured)
				}
			}
		}

		fly := d.input.Fly()
		if !d.captured {
			fly.MouseDX, fly.MouseDY = 0, 0
		}
		d.controls.Step(d.camera, fly)

		d.renderer.Begin()
		d.terrain.Render(d.camera, d.light)
		d.renderer.End()

		d.window.SwapBuffers()

		if fps, ok := stats.tick(time.Now()); ok {
			d.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", Title, fps))
			d.log.Debug("frame stats",
				zap.Float64("fps", fps),
				zap.Float32("x", d.camera.Position.X),
				zap.Float32("y", d.camera.Position.Y),
				zap.Float32("z", d.camera.Position.Z),
			)
		}

		if limiter != nil {
			<-limiter
		}
	}

	return nil
}

// Close releases GPU resources and the window.
func (d *Demo) Close() {
	d.log.Info("closing demo")

	if d.terrain != nil {
		d.terrain.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Close()
	}
	if d.window != nil {
		d.window.Close()
	}
}
