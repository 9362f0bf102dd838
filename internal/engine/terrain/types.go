// Package terrain builds a bump-mappable triangle mesh from a raster heightmap.
package terrain

import (
	"github.com/Faultbox/bumpterrain/pkg/math"
)

// HeightSample is one grid vertex of the heightmap in world space.
type HeightSample struct {
	Position math.Vec3
	Normal   math.Vec3
}

// HeightGrid holds Width x Height samples in row-major order.
type HeightGrid struct {
	Grid[HeightSample]
	CellSpacing float32 // World distance between neighbouring samples

	reduced bool
}

// Reduced reports whether ReduceHeights has already been applied.
func (g *HeightGrid) Reduced() bool {
	return g.reduced
}

// ModelVertex is one triangle corner of the intermediate, non-indexed model.
type ModelVertex struct {
	Position math.Vec3
	TexCoord math.Vec2
	Normal   math.Vec3
	Tangent  math.Vec3
	Binormal math.Vec3
}

// Vertex is the packed GPU vertex layout (56 bytes, no padding).
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
	Normal   [3]float32
	Tangent  [3]float32
	Binormal [3]float32
}

// Mesh holds the complete terrain mesh data ready for GPU upload.
type Mesh struct {
	Width       int     // Heightmap samples along X
	Height      int     // Heightmap samples along Z
	CellSpacing float32 // World size of one grid cell
	Vertices    []Vertex
	Indices     []uint32
	Bounds      Bounds
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VerticesPerCell is the number of triangle corners emitted per grid cell.
const VerticesPerCell = 6

// VertexCount returns the vertex count of a mesh built from a width x height heightmap.
func VertexCount(width, height int) int {
	if width < 2 || height < 2 {
		return 0
	}
	return (width - 1) * (height - 1) * VerticesPerCell
}
