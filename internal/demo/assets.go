package demo

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/bumpterrain/internal/config"
	"github.com/Faultbox/bumpterrain/internal/engine/terrain"
	"github.com/Faultbox/bumpterrain/internal/engine/texture"
	"github.com/Faultbox/bumpterrain/internal/logger"
)

// Assets is everything the terrain needs on the CPU side before upload.
type Assets struct {
	Mesh    *terrain.Mesh
	Diffuse *image.RGBA
	Bump    *image.RGBA
}

// TerrainOptions converts terrain config to mesh build options.
func TerrainOptions(cfg config.TerrainConfig) terrain.Options {
	return terrain.Options{
		CellSpacing:    cfg.CellSpacing,
		HeightScale:    cfg.HeightScale,
		HeightDamping:  cfg.HeightDamping,
		StrictNumerics: cfg.StrictNumerics,
	}
}

// LoadAssets builds the terrain mesh and decodes both textures.
// It fails on the first missing or invalid input.
func LoadAssets(cfg config.TerrainConfig) (*Assets, error) {
	log := logger.Named("demo")

	mesh, err := terrain.BuildFile(cfg.Heightmap, TerrainOptions(cfg))
	if err != nil {
		return nil, err
	}

	diffuse, err := texture.LoadFile(cfg.DiffuseTexture)
	if err != nil {
		return nil, fmt.Errorf("diffuse texture: %w", err)
	}
	bump, err := texture.LoadFile(cfg.BumpTexture)
	if err != nil {
		return nil, fmt.Errorf("bump texture: %w", err)
	}

	log.Info("terrain assets loaded",
		zap.String("heightmap", cfg.Heightmap),
		zap.Int("vertices", mesh.VertexCount()),
		zap.String("diffuse", cfg.DiffuseTexture),
		zap.Stringer("diffuse_size", diffuse.Bounds().Size()),
		zap.String("bump", cfg.BumpTexture),
		zap.Stringer("bump_size", bump.Bounds().Size()),
	)

	return &Assets{Mesh: mesh, Diffuse: diffuse, Bump: bump}, nil
}
