package terrain

import (
	"testing"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

func TestBuildModel_VertexCount(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {3, 3}, {4, 2}, {2, 5}, {17, 9}} {
		w, h := size[0], size[1]
		g := mustNormals(t, mustGrid(t, flatRaster(w, h, 5)))

		model := BuildModel(g)
		want := (w - 1) * (h - 1) * 6
		if len(model) != want {
			t.Errorf("%dx%d: expected %d vertices, got %d", w, h, want, len(model))
		}
		if VertexCount(w, h) != want {
			t.Errorf("%dx%d: VertexCount = %d, want %d", w, h, VertexCount(w, h), want)
		}
	}
}

func TestBuildModel_CornerLayout(t *testing.T) {
	// 3x2 samples: two cells along X. Brightness encodes the sample so
	// positions identify which grid corner each vertex came from.
	r := testRaster{3, 2, func(i, j int) uint8 { return uint8(10*j + i) }}
	g := mustNormals(t, mustGrid(t, r))
	model := BuildModel(g)

	type corner struct {
		i, j int
		uv   math.Vec2
	}

	for cell := 0; cell < 2; cell++ {
		i, j := cell, 0
		want := []corner{
			{i, j + 1, math.Vec2{X: 0, Y: 0}},     // upper left
			{i + 1, j + 1, math.Vec2{X: 1, Y: 0}}, // upper right
			{i, j, math.Vec2{X: 0, Y: 1}},         // bottom left
			{i, j, math.Vec2{X: 0, Y: 1}},         // bottom left
			{i + 1, j + 1, math.Vec2{X: 1, Y: 0}}, // upper right
			{i + 1, j, math.Vec2{X: 1, Y: 1}},     // bottom right
		}

		for k, c := range want {
			v := model[cell*6+k]
			s := g.At(c.i, c.j)
			if v.Position != s.Position {
				t.Errorf("cell %d corner %d: expected position of (%d,%d) %v, got %v", cell, k, c.i, c.j, s.Position, v.Position)
			}
			if v.Normal != s.Normal {
				t.Errorf("cell %d corner %d: expected normal %v, got %v", cell, k, s.Normal, v.Normal)
			}
			if v.TexCoord != c.uv {
				t.Errorf("cell %d corner %d: expected uv %v, got %v", cell, k, c.uv, v.TexCoord)
			}
			if v.Tangent != (math.Vec3{}) || v.Binormal != (math.Vec3{}) {
				t.Errorf("cell %d corner %d: tangent space must be unset", cell, k)
			}
		}
	}
}

func TestBuildModel_RowMajorCells(t *testing.T) {
	g := mustNormals(t, mustGrid(t, flatRaster(3, 3, 0)))
	model := BuildModel(g)

	// Cell (i, j) starts at ((j*(W-1))+i)*6 with its bottom-left corner at offset 2.
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			base := (j*2 + i) * 6
			if got, want := model[base+2].Position, g.At(i, j).Position; got != want {
				t.Errorf("cell (%d,%d): expected bottom-left %v, got %v", i, j, want, got)
			}
		}
	}
}
