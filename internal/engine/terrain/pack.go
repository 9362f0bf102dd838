package terrain

// Pack converts the model into GPU vertices in the same order and returns
// the identity index list 0..N-1.
func Pack(model []ModelVertex) ([]Vertex, []uint32) {
	vertices := make([]Vertex, len(model))
	indices := make([]uint32, len(model))

	for i, m := range model {
		vertices[i] = Vertex{
			Position: m.Position.Array(),
			TexCoord: m.TexCoord.Array(),
			Normal:   m.Normal.Array(),
			Tangent:  m.Tangent.Array(),
			Binormal: m.Binormal.Array(),
		}
		indices[i] = uint32(i)
	}

	return vertices, indices
}

func computeBounds(vertices []Vertex) Bounds {
	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := range vertices {
		p := vertices[i].Position
		for k := 0; k < 3; k++ {
			if p[k] < bounds.Min[k] {
				bounds.Min[k] = p[k]
			}
			if p[k] > bounds.Max[k] {
				bounds.Max[k] = p[k]
			}
		}
	}
	return bounds
}
