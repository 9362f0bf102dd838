package terrain

import (
	"fmt"

	"github.com/Faultbox/bumpterrain/pkg/math"
)

// FaceNormals computes one unnormalized normal per grid cell.
// For cell (i, j) the triangle is v1=(i,j), v2=(i+1,j), v3=(i,j+1) and the
// normal is (v1-v3) x (v3-v2). Magnitude has no meaning beyond averaging.
func FaceNormals(g *HeightGrid) *Grid[math.Vec3] {
	faces := NewGrid[math.Vec3](g.Width-1, g.Height-1)

	for j := 0; j < faces.Height; j++ {
		for i := 0; i < faces.Width; i++ {
			v1 := g.At(i, j).Position
			v2 := g.At(i+1, j).Position
			v3 := g.At(i, j+1).Position

			e1 := v1.Sub(v3)
			e2 := v3.Sub(v2)

			faces.Set(i, j, e1.Cross(e2))
		}
	}

	return faces
}

// VertexNormals averages the face normals touching each grid vertex (up to
// four) and normalizes the result. The grid is not modified; merge the
// returned overlay with ApplyNormals.
//
// A vertex whose averaged normal has zero length gets NaN components. With
// strict set, such a vertex is reported as ErrDegenerateNormal instead.
func VertexNormals(g *HeightGrid, faces *Grid[math.Vec3], strict bool) (*Grid[math.Vec3], error) {
	normals := NewGrid[math.Vec3](g.Width, g.Height)

	for j := 0; j < g.Height; j++ {
		for i := 0; i < g.Width; i++ {
			var sum math.Vec3
			count := 0

			// Bottom left
			if faces.InBounds(i-1, j-1) {
				sum = sum.Add(faces.At(i-1, j-1))
				count++
			}
			// Bottom right
			if faces.InBounds(i, j-1) {
				sum = sum.Add(faces.At(i, j-1))
				count++
			}
			// Upper left
			if faces.InBounds(i-1, j) {
				sum = sum.Add(faces.At(i-1, j))
				count++
			}
			// Upper right
			if faces.InBounds(i, j) {
				sum = sum.Add(faces.At(i, j))
				count++
			}

			avg := sum.Div(float32(count))
			n := avg.Div(avg.Length())

			if strict && !n.IsFinite() {
				return nil, fmt.Errorf("%w: vertex (%d,%d), %d faces", ErrDegenerateNormal, i, j, count)
			}

			normals.Set(i, j, n)
		}
	}

	return normals, nil
}

// ApplyNormals returns a copy of g with each sample's normal taken from normals.
func ApplyNormals(g *HeightGrid, normals *Grid[math.Vec3]) *HeightGrid {
	if normals.Width != g.Width || normals.Height != g.Height {
		panic(fmt.Sprintf("terrain: normals %dx%d do not match grid %dx%d",
			normals.Width, normals.Height, g.Width, g.Height))
	}

	out := &HeightGrid{
		Grid:        g.clone(),
		CellSpacing: g.CellSpacing,
		reduced:     g.reduced,
	}
	for i := range out.cells {
		out.cells[i].Normal = normals.cells[i]
	}

	return out
}
