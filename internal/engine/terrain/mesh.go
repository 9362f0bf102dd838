package terrain

import (
	"github.com/Faultbox/bumpterrain/pkg/math"
)

// Texture coordinates of the four cell corners. Each cell maps the full texture.
var (
	uvUpperLeft   = math.Vec2{X: 0, Y: 0}
	uvUpperRight  = math.Vec2{X: 1, Y: 0}
	uvBottomLeft  = math.Vec2{X: 0, Y: 1}
	uvBottomRight = math.Vec2{X: 1, Y: 1}
)

// BuildModel expands the grid into a non-indexed triangle list, two
// triangles per cell sharing the upper-right/bottom-left diagonal.
// Tangent and binormal are left zero for SolveTangents.
func BuildModel(g *HeightGrid) []ModelVertex {
	model := make([]ModelVertex, 0, VertexCount(g.Width, g.Height))

	corner := func(i, j int, uv math.Vec2) ModelVertex {
		s := g.At(i, j)
		return ModelVertex{Position: s.Position, TexCoord: uv, Normal: s.Normal}
	}

	for j := 0; j < g.Height-1; j++ {
		for i := 0; i < g.Width-1; i++ {
			upperLeft := corner(i, j+1, uvUpperLeft)
			upperRight := corner(i+1, j+1, uvUpperRight)
			bottomLeft := corner(i, j, uvBottomLeft)
			bottomRight := corner(i+1, j, uvBottomRight)

			model = append(model,
				upperLeft, upperRight, bottomLeft,
				bottomLeft, upperRight, bottomRight,
			)
		}
	}

	return model
}
