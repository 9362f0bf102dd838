package demo

import (
	"fmt"

	"github.com/Faultbox/bumpterrain/internal/engine/camera"
	"github.com/Faultbox/bumpterrain/internal/engine/lighting"
	"github.com/Faultbox/bumpterrain/internal/engine/scene"
	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
)

// Terrain is the drawable terrain. It is ready only after the mesh and
// both textures reached the GPU; until then Render does nothing.
type Terrain struct {
	mesh     *terrain.Mesh
	renderer *scene.TerrainRenderer
	ready    bool
}

// NewTerrain uploads assets to the GPU. Partially created GPU objects are
// released on failure. maxTextureSize of zero means no downscaling.
func NewTerrain(assets *Assets, maxTextureSize int) (*Terrain, error) {
	tr, err := scene.NewTerrainRenderer()
	if err != nil {
		return nil, err
	}

	if err := tr.Upload(assets.Mesh); err != nil {
		tr.Destroy()
		return nil, fmt.Errorf("uploading terrain mesh: %w", err)
	}
	if err := tr.SetTextures(assets.Diffuse, assets.Bump, maxTextureSize); err != nil {
		tr.Destroy()
		return nil, fmt.Errorf("uploading terrain textures: %w", err)
	}

	return &Terrain{
		mesh:     assets.Mesh,
		renderer: tr,
		ready:    tr.Ready(),
	}, nil
}

// Ready reports whether construction fully succeeded.
func (t *Terrain) Ready() bool {
	return t != nil && t.ready
}

// Mesh returns the CPU-side mesh, used for ground queries.
func (t *Terrain) Mesh() *terrain.Mesh {
	return t.mesh
}

// IndexCount returns the number of indices drawn per frame.
func (t *Terrain) IndexCount() int32 {
	if !t.Ready() {
		return 0
	}
	return t.renderer.IndexCount()
}

// Render draws the terrain from the camera's point of view.
func (t *Terrain) Render(cam *camera.FPSCamera, light lighting.Directional) {
	if !t.Ready() {
		return
	}
	t.renderer.Render(cam.World(), cam.View(), cam.Projection(), light)
}

// Destroy releases GPU resources.
func (t *Terrain) Destroy() {
	if t == nil || t.renderer == nil {
		return
	}
	t.renderer.Destroy()
	t.renderer = nil
	t.ready = false
}
