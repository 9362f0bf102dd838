package terrain

// HeightAt returns the terrain height at a world XZ position by bilinear
// interpolation of the cell's four corners. Positions outside the terrain
// are clamped to the nearest edge.
func (m *Mesh) HeightAt(worldX, worldZ float32) float32 {
	if m == nil || m.Width < 2 || m.Height < 2 || m.CellSpacing <= 0 {
		return 0
	}

	cellsX := m.Width - 1
	cellsZ := m.Height - 1

	cellX, fracX := cellCoord(worldX/m.CellSpacing, cellsX)
	cellZ, fracZ := cellCoord(worldZ/m.CellSpacing, cellsZ)

	// Cell vertex layout: 0=upper-left, 1=upper-right, 2=bottom-left, 5=bottom-right
	base := (cellZ*cellsX + cellX) * VerticesPerCell
	bl := m.Vertices[base+2].Position[1]
	br := m.Vertices[base+5].Position[1]
	ul := m.Vertices[base+0].Position[1]
	ur := m.Vertices[base+1].Position[1]

	// Bottom edge (lower Z), then upper edge, then blend on Z
	bottom := bl*(1-fracX) + br*fracX
	upper := ul*(1-fracX) + ur*fracX
	return bottom*(1-fracZ) + upper*fracZ
}

// cellCoord splits a position in cell units into a cell index in
// [0, cells-1] and the fraction across it. Inputs are clamped before the int
// conversion; NaN reads cell 0.
func cellCoord(f float32, cells int) (int, float32) {
	if f != f {
		return 0, 0
	}
	f = clampf(f, 0, float32(cells))
	cell := min(int(f), cells-1)
	return cell, f - float32(cell)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
