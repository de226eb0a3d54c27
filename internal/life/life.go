// Package life implements Conway's Game of Life on a toroidal grid. The
// functions here are pure: they read one generation and build the next
// without rendering or scheduling.
package life

import "lifecanvas/internal/core"

// Engine creates and evolves grids of a fixed size.
type Engine struct {
	rows, cols int
	rng        *core.RNG
}

// New returns an Engine for rows x cols grids. The seed drives CreateGrid's
// randomization.
func New(rows, cols int, seed int64) *Engine {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Engine{rows: rows, cols: cols, rng: core.NewRNG(seed)}
}

// Rows returns the configured row count.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the configured column count.
func (e *Engine) Cols() int { return e.cols }

// CreateGrid returns a new grid of the engine's dimensions. When randomize is
// set each cell is alive with probability 0.5, otherwise every cell is dead.
func (e *Engine) CreateGrid(randomize bool) *core.Grid {
	g := core.NewGrid(e.rows, e.cols)
	if randomize {
		e.rng.FillBinary(g.Cells())
	}
	return g
}

// CountNeighbors sums the states of the eight cells around (row, col),
// wrapping across the grid edges. The cell itself is not counted.
func CountNeighbors(g *core.Grid, row, col int) int {
	rows, cols := g.Rows, g.Cols
	cells := g.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := ((row+dr)%rows + rows) % rows
			nc := ((col+dc)%cols + cols) % cols
			n += int(cells[nr*cols+nc])
		}
	}
	return n
}

// ApplyRule returns the next state of (row, col) under B3/S23.
func ApplyRule(g *core.Grid, row, col int) core.CellState {
	neighbors := CountNeighbors(g, row, col)
	state := g.At(row, col)
	switch {
	case state == core.Alive && (neighbors < 2 || neighbors > 3):
		return core.Dead
	case state == core.Dead && neighbors == 3:
		return core.Alive
	default:
		return state
	}
}

// Tick computes the next generation into a fresh grid, reading only from g.
// The returned population is the live count of g, the generation that was
// evaluated.
func Tick(g *core.Grid) (*core.Grid, int) {
	next := core.NewGrid(g.Rows, g.Cols)
	out := next.Cells()
	population := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			out[next.Index(row, col)] = ApplyRule(g, row, col)
			population += int(g.At(row, col))
		}
	}
	return next, population
}

// SetCell writes state at (row, col). Coordinates outside the grid are ignored.
func SetCell(g *core.Grid, row, col int, state core.CellState) {
	g.Set(row, col, state)
}
