package terrain

import "fmt"

// Grid is a contiguous row-major 2D array addressed by column i and row j.
type Grid[T any] struct {
	Width  int
	Height int
	cells  []T
}

// NewGrid allocates a zeroed width x height grid.
func NewGrid[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("terrain: invalid grid size %dx%d", width, height))
	}
	return &Grid[T]{
		Width:  width,
		Height: height,
		cells:  make([]T, width*height),
	}
}

// InBounds reports whether (i, j) addresses a cell.
func (g *Grid[T]) InBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < g.Width && j < g.Height
}

// At returns the cell at (i, j). Panics if out of bounds.
func (g *Grid[T]) At(i, j int) T {
	return g.cells[g.index(i, j)]
}

// Set stores v at (i, j). Panics if out of bounds.
func (g *Grid[T]) Set(i, j int, v T) {
	g.cells[g.index(i, j)] = v
}

// Len returns the number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

func (g *Grid[T]) index(i, j int) int {
	if !g.InBounds(i, j) {
		panic(fmt.Sprintf("terrain: grid index (%d,%d) out of range %dx%d", i, j, g.Width, g.Height))
	}
	return j*g.Width + i
}

func (g *Grid[T]) clone() Grid[T] {
	c := Grid[T]{Width: g.Width, Height: g.Height, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
