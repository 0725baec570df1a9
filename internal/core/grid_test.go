package core

import "testing"

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 4)
	if g.Rows != 3 || g.Cols != 4 {
		t.Fatalf("unexpected dimensions %dx%d", g.Rows, g.Cols)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}

	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.row, tc.col); got != tc.want {
			t.Errorf("InBounds(%d,%d)=%v, expected %v", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestGridSetIgnoresOffGrid(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0, true)
	g.Set(0, 2, true)
	g.Set(1, 1, true)

	for i, alive := range g.Cells() {
		if want := i == g.Index(1, 1); alive != want {
			t.Fatalf("cell %d alive=%v, expected %v", i, alive, want)
		}
	}
	if g.Alive(5, 5) {
		t.Fatal("off-grid cells must read as dead")
	}

	g.Clear()
	if g.Alive(1, 1) {
		t.Fatal("Clear must kill every cell")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if got := g.Size(); got != (Size{Rows: 1, Cols: 1}) {
		t.Fatalf("expected 1x1 grid, got %+v", got)
	}
}
