package terrain

import "testing"

func TestGrid_SetAt(t *testing.T) {
	g := NewGrid[int](3, 2)
	if g.Len() != 6 {
		t.Fatalf("expected 6 cells, got %d", g.Len())
	}

	g.Set(2, 1, 42)
	if got := g.At(2, 1); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	// Row-major: (2,1) is the last cell
	if g.cells[5] != 42 {
		t.Errorf("expected row-major layout, cells = %v", g.cells)
	}
}

func TestGrid_InBounds(t *testing.T) {
	g := NewGrid[int](3, 2)

	tests := []struct {
		i, j int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.i, tt.j); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestGrid_AtOutOfRangePanics(t *testing.T) {
	g := NewGrid[int](3, 2)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for column past the row end")
		}
	}()
	// Flat index 3 exists, but (3,0) must not wrap into row 1.
	g.At(3, 0)
}
