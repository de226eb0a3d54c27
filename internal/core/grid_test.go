package core

import "testing"

func TestWrap(t *testing.T) {
	g := NewGrid(4, 6)
	cases := []struct{ r, c, wr, wc int }{
		{-1, 0, 3, 0},
		{4, 0, 0, 0},
		{0, -1, 0, 5},
		{0, 6, 0, 0},
		{-5, -7, 3, 5},
		{9, 13, 1, 1},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.r, tc.c)
		if r != tc.wr || c != tc.wc {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.c, r, c, tc.wr, tc.wc)
		}
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(-1, 1, Alive)
	g.Set(3, 1, Alive)
	g.Set(1, 3, Alive)
	if g.Population() != 0 {
		t.Fatalf("population = %d after out-of-range writes", g.Population())
	}
	if g.At(-1, 0) != Dead {
		t.Fatal("out-of-range read should be Dead")
	}
}

func TestCloneEqual(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(0, 0, Alive)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs")
	}
	c.Set(2, 3, Alive)
	if g.Equal(c) {
		t.Fatal("mutating the clone must not affect the original")
	}
	if g.Equal(NewGrid(4, 3)) {
		t.Fatal("different dimensions must not be equal")
	}
}

func TestDimensionsFor(t *testing.T) {
	rows, cols := DimensionsFor(1024, 768, 5)
	if rows != 153 || cols != 204 {
		t.Fatalf("DimensionsFor = %dx%d", rows, cols)
	}
	rows, cols = DimensionsFor(3, 3, 5)
	if rows != 1 || cols != 1 {
		t.Fatalf("tiny surface = %dx%d, want 1x1", rows, cols)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if g.Rows != 1 || g.Cols != 1 || len(g.Cells()) != 1 {
		t.Fatalf("clamped grid = %dx%d len %d", g.Rows, g.Cols, len(g.Cells()))
	}
}
