package terrain

import (
	"fmt"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

// Raster is a grid of brightness samples, such as a parsed heightmap BMP.
type Raster interface {
	Size() (width, height int)
	Brightness(i, j int) uint8
}

// SampleHeights converts raster brightness into world-space height samples.
// Pixel (i, j) becomes (i*cellSpacing, brightness*heightScale, j*cellSpacing).
// Normals are left zero until ApplyNormals.
func SampleHeights(src Raster, cellSpacing, heightScale float32) (*HeightGrid, error) {
	width, height := src.Size()
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrHeightmapTooSmall, width, height)
	}

	g := &HeightGrid{
		Grid:        *NewGrid[HeightSample](width, height),
		CellSpacing: cellSpacing,
	}

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			b := src.Brightness(i, j)
			g.Set(i, j, HeightSample{
				Position: math.Vec3{
					X: float32(i) * cellSpacing,
					Y: float32(b) * heightScale,
					Z: float32(j) * cellSpacing,
				},
			})
		}
	}

	return g, nil
}

// ReduceHeights divides every sample height by damping to flatten exaggerated
// elevation. It must run once, before normal estimation.
func ReduceHeights(g *HeightGrid, damping float32) error {
	if g.reduced {
		return ErrAlreadyReduced
	}
	if damping <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDamping, damping)
	}

	for i := range g.cells {
		g.cells[i].Position.Y /= damping
	}
	g.reduced = true

	return nil
}
