package life

import (
	"testing"

	"lifecanvas/internal/core"
)

func gridFrom(rows, cols int, alive ...[2]int) *core.Grid {
	g := core.NewGrid(rows, cols)
	for _, rc := range alive {
		g.Set(rc[0], rc[1], core.Alive)
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridFrom(5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	next, population := Tick(g)
	if population != 3 {
		t.Fatalf("population = %d, want 3", population)
	}

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			alive := next.At(r, c) == core.Alive
			if expects[[2]int{r, c}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, alive, !alive)
			}
		}
	}

	back, _ := Tick(next)
	if !back.Equal(g) {
		t.Fatal("blinker should return to its vertical phase after two ticks")
	}
}

func TestCountNeighborsWrapsRows(t *testing.T) {
	g := gridFrom(6, 6, [2]int{5, 3})
	if got := CountNeighbors(g, 0, 3); got != 1 {
		t.Fatalf("row 0 should see the last row, got %d neighbors", got)
	}
	if got := CountNeighbors(g, 0, 2); got != 1 {
		t.Fatalf("row 0 diagonal wrap, got %d neighbors", got)
	}
	g = gridFrom(6, 6, [2]int{0, 3})
	if got := CountNeighbors(g, 5, 3); got != 1 {
		t.Fatalf("last row should see row 0, got %d neighbors", got)
	}
}

func TestCountNeighborsWrapsCols(t *testing.T) {
	g := gridFrom(6, 6, [2]int{2, 5})
	if got := CountNeighbors(g, 2, 0); got != 1 {
		t.Fatalf("col 0 should see the last col, got %d neighbors", got)
	}
	g = gridFrom(6, 6, [2]int{2, 0})
	if got := CountNeighbors(g, 3, 5); got != 1 {
		t.Fatalf("last col should see col 0 diagonally, got %d neighbors", got)
	}
}

func TestCountNeighborsCornerWrap(t *testing.T) {
	g := gridFrom(4, 4, [2]int{3, 3})
	if got := CountNeighbors(g, 0, 0); got != 1 {
		t.Fatalf("corner (0,0) should see (3,3), got %d", got)
	}
}

func TestCountNeighborsExcludesSelf(t *testing.T) {
	g := gridFrom(5, 5, [2]int{2, 2})
	if got := CountNeighbors(g, 2, 2); got != 0 {
		t.Fatalf("lone cell counted itself: %d", got)
	}
	full := core.NewGrid(5, 5)
	for i := range full.Cells() {
		full.Cells()[i] = core.Alive
	}
	if got := CountNeighbors(full, 2, 2); got != 8 {
		t.Fatalf("full grid neighbors = %d, want 8", got)
	}
}

// ringGrid places the center cell with the given state and n live neighbours.
func ringGrid(center core.CellState, n int) *core.Grid {
	ring := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	g := core.NewGrid(7, 7)
	g.Set(2, 2, center)
	for i := 0; i < n; i++ {
		g.Set(ring[i][0], ring[i][1], core.Alive)
	}
	return g
}

func TestApplyRule(t *testing.T) {
	tests := []struct {
		state     core.CellState
		neighbors int
		want      core.CellState
	}{
		{core.Alive, 0, core.Dead},
		{core.Alive, 1, core.Dead},
		{core.Alive, 2, core.Alive},
		{core.Alive, 3, core.Alive},
		{core.Alive, 4, core.Dead},
		{core.Alive, 5, core.Dead},
		{core.Alive, 6, core.Dead},
		{core.Alive, 7, core.Dead},
		{core.Alive, 8, core.Dead},
		{core.Dead, 0, core.Dead},
		{core.Dead, 2, core.Dead},
		{core.Dead, 3, core.Alive},
		{core.Dead, 4, core.Dead},
		{core.Dead, 8, core.Dead},
	}
	for _, tt := range tests {
		g := ringGrid(tt.state, tt.neighbors)
		if n := CountNeighbors(g, 2, 2); n != tt.neighbors {
			t.Fatalf("setup: neighbors = %d, want %d", n, tt.neighbors)
		}
		if got := ApplyRule(g, 2, 2); got != tt.want {
			t.Fatalf("state=%d neighbors=%d: got %d, want %d", tt.state, tt.neighbors, got, tt.want)
		}
	}
}

func TestTickLoneCellDies(t *testing.T) {
	g := gridFrom(3, 3, [2]int{1, 1})
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if n := CountNeighbors(g, r, c); n > 1 {
				t.Fatalf("cell (%d,%d) has %d neighbors, want <= 1", r, c, n)
			}
		}
	}
	next, population := Tick(g)
	if next.Population() != 0 {
		t.Fatalf("expected all-dead grid, got %d live cells", next.Population())
	}
	if population != 1 {
		t.Fatalf("population reports the evaluated grid: got %d, want 1", population)
	}
	_, population = Tick(next)
	if population != 0 {
		t.Fatalf("population of empty grid = %d", population)
	}
}

func TestTickBlockStillLife(t *testing.T) {
	// 2x2 block: every live cell has exactly 3 live neighbours and no dead
	// cell has exactly 3, so the pattern is stable.
	g := gridFrom(10, 10, [2]int{4, 4}, [2]int{4, 5}, [2]int{5, 4}, [2]int{5, 5})
	for _, rc := range [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		if n := CountNeighbors(g, rc[0], rc[1]); n != 3 {
			t.Fatalf("block cell %v has %d neighbors, want 3", rc, n)
		}
	}
	next, population := Tick(g)
	if population != 4 {
		t.Fatalf("population = %d, want 4", population)
	}
	if !next.Equal(g) {
		t.Fatal("block still life changed after one tick")
	}
}

func TestTickSolidThreeByThree(t *testing.T) {
	// A solid 3x3 square: center has 8 neighbours, edge midpoints 5, corners 3.
	var alive [][2]int
	for r := 3; r <= 5; r++ {
		for c := 3; c <= 5; c++ {
			alive = append(alive, [2]int{r, c})
		}
	}
	g := gridFrom(12, 12, alive...)
	if n := CountNeighbors(g, 4, 4); n != 8 {
		t.Fatalf("center neighbors = %d", n)
	}
	if n := CountNeighbors(g, 3, 4); n != 5 {
		t.Fatalf("edge neighbors = %d", n)
	}
	if n := CountNeighbors(g, 3, 3); n != 3 {
		t.Fatalf("corner neighbors = %d", n)
	}
	next, _ := Tick(g)
	if next.At(4, 4) != core.Dead || next.At(3, 4) != core.Dead {
		t.Fatal("overcrowded cells should die")
	}
	if next.At(3, 3) != core.Alive {
		t.Fatal("corner with 3 neighbors should survive")
	}
	if next.At(2, 4) != core.Alive {
		t.Fatal("dead cell above edge with 3 neighbors should be born")
	}
}

func TestTickReadsOnlyPreviousGrid(t *testing.T) {
	// Glider: an in-place update would corrupt later neighbour counts.
	g := gridFrom(8, 8, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	before := g.Clone()
	expected := core.NewGrid(8, 8)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			expected.Set(r, c, ApplyRule(before, r, c))
		}
	}
	next, _ := Tick(g)
	if !g.Equal(before) {
		t.Fatal("Tick mutated its input")
	}
	if !next.Equal(expected) {
		t.Fatal("Tick output differs from per-cell evaluation of the prior grid")
	}
	want := gridFrom(8, 8, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2}, [2]int{3, 1})
	if !next.Equal(want) {
		t.Fatal("glider did not advance to its second phase")
	}
}

func TestCreateGridCleared(t *testing.T) {
	e := New(7, 9, 1)
	_ = e.CreateGrid(true)
	g := e.CreateGrid(false)
	if g.Rows != 7 || g.Cols != 9 {
		t.Fatalf("dimensions = %dx%d", g.Rows, g.Cols)
	}
	if g.Population() != 0 {
		t.Fatalf("cleared grid has %d live cells", g.Population())
	}
	if len(g.Cells()) != 63 {
		t.Fatalf("backing length = %d", len(g.Cells()))
	}
}

func TestCreateGridRandomized(t *testing.T) {
	e := New(40, 40, 42)
	g := e.CreateGrid(true)
	pop := g.Population()
	if pop < 600 || pop > 1000 {
		t.Fatalf("randomized population %d far from half of 1600", pop)
	}
	for _, c := range g.Cells() {
		if c != core.Dead && c != core.Alive {
			t.Fatalf("unexpected cell state %d", c)
		}
	}

	a := New(10, 10, 7).CreateGrid(true)
	b := New(10, 10, 7).CreateGrid(true)
	if !a.Equal(b) {
		t.Fatal("same seed should produce the same grid")
	}
}

func TestSetCellOutOfBounds(t *testing.T) {
	g := gridFrom(4, 4, [2]int{1, 1})
	before := g.Clone()
	SetCell(g, -1, 0, core.Alive)
	SetCell(g, 4, 0, core.Alive)
	SetCell(g, 0, -1, core.Alive)
	SetCell(g, 0, 4, core.Alive)
	if !g.Equal(before) {
		t.Fatal("out-of-range SetCell changed the grid")
	}
	SetCell(g, 3, 3, core.Alive)
	if g.At(3, 3) != core.Alive {
		t.Fatal("in-range SetCell did not apply")
	}
}
