package terrain

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

const epsilon = 1e-5

// testRaster is an in-memory heightmap whose brightness is f(i, j).
type testRaster struct {
	w, h int
	f    func(i, j int) uint8
}

func (r testRaster) Size() (int, int)          { return r.w, r.h }
func (r testRaster) Brightness(i, j int) uint8 { return r.f(i, j) }

func flatRaster(w, h int, level uint8) testRaster {
	return testRaster{w, h, func(i, j int) uint8 { return level }}
}

func approx(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) <= epsilon
}

func approxVec(a, b math.Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func isNaN(f float32) bool {
	return stdmath.IsNaN(float64(f))
}

// mustGrid samples and reduces r with the default options.
func mustGrid(t *testing.T, r Raster) *HeightGrid {
	t.Helper()
	opts := DefaultOptions()
	g, err := SampleHeights(r, opts.CellSpacing, opts.HeightScale)
	if err != nil {
		t.Fatalf("SampleHeights failed: %v", err)
	}
	if err := ReduceHeights(g, opts.HeightDamping); err != nil {
		t.Fatalf("ReduceHeights failed: %v", err)
	}
	return g
}

// mustNormals returns g with estimated normals applied.
func mustNormals(t *testing.T, g *HeightGrid) *HeightGrid {
	t.Helper()
	normals, err := VertexNormals(g, FaceNormals(g), false)
	if err != nil {
		t.Fatalf("VertexNormals failed: %v", err)
	}
	return ApplyNormals(g, normals)
}
