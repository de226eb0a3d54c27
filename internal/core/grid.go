package core

// CellState is the value stored for every grid position.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = 0
	// Alive marks a populated cell.
	Alive CellState = 1
)

// Grid stores a fixed-size 2D grid of cell states in row-major order.
type Grid struct {
	Rows, Cols int
	data       []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]CellState, rows*cols)}
}

// DimensionsFor derives grid dimensions from a pixel surface and cell size.
func DimensionsFor(widthPx, heightPx, cellPx int) (rows, cols int) {
	if cellPx <= 0 {
		cellPx = 1
	}
	rows = heightPx / cellPx
	cols = widthPx / cellPx
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the state at (row, col). Out-of-range coordinates read as Dead.
func (g *Grid) At(row, col int) CellState {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.data[g.Index(row, col)]
}

// Set stores state at (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, state CellState) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[g.Index(row, col)] = state
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]CellState, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
