package sand

import (
	"errors"

	"sandfall/internal/core"
)

// ErrOutOfBounds is returned when a placement targets a cell outside the
// grid. It is an expected, recoverable condition (the pointer dragged past
// the canvas edge); callers skip the cell and continue.
var ErrOutOfBounds = errors.New("sand: cell out of bounds")

// Cell is one addressable position of the grid: empty, or occupied by a
// grain with a color.
type Cell struct {
	Occupied bool
	Color    core.RGB
}

// Grid is a fixed-size 2D store of cells in row-major order: index =
// row*cols + col. Row increases downward (the gravity direction), column
// increases rightward. Dimensions never change after construction.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates an all-empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds returns true if (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Place occupies the cell at (row, col) with the given color, overwriting
// any previous color. Returns ErrOutOfBounds without touching the grid if
// the coordinates are outside it.
func (g *Grid) Place(row, col int, color core.RGB) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	g.cells[g.index(row, col)] = Cell{Occupied: true, Color: color}
	return nil
}

// IsOccupied reports whether the cell at (row, col) holds a grain.
// Out-of-bounds queries return false; off-grid neighbors read as
// permanently empty so border checks never fail.
func (g *Grid) IsOccupied(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[g.index(row, col)].Occupied
}

// At returns the cell at (row, col), or an empty cell for out-of-bounds reads.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Cell{}
	}
	return g.cells[g.index(row, col)]
}

// ClearCell empties the cell at (row, col). Used as the vacate half of a
// settling move. Out-of-bounds coordinates are ignored.
func (g *Grid) ClearCell(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[g.index(row, col)] = Cell{}
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in row-major order (top to bottom,
// left to right). This is the snapshot the render collaborator consumes.
func (g *Grid) Each(fn func(row, col int, color core.RGB)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[g.index(row, col)]
			if c.Occupied {
				fn(row, col, c.Color)
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
