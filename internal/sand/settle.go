package sand

// SettleResult describes what happened during one settling tick.
type SettleResult struct {
	Moves int // Grains that moved this tick
}

// Settler advances the grid one tick at a time. It keeps a per-tick moved
// mask (reused between ticks to avoid reallocation) but no state across
// ticks beyond the grid itself.
type Settler struct {
	moved []bool
}

// NewSettler creates a settler.
func NewSettler() *Settler {
	return &Settler{}
}

// Tick advances the simulation by exactly one tick.
//
// Cells are scanned in a fixed row-major order (top to bottom, then left to
// right) so post-tick grid contents are reproducible. Each occupied cell
// tries moves in priority order, first match wins:
//
//  1. straight down, if the cell below is empty
//  2. diagonally down-left
//  3. diagonally down-right
//  4. rest
//
// A move vacates the source before occupying the destination, color
// preserved. Destinations are marked in the moved mask and skipped when the
// scan reaches them, so a grain advances at most one row per tick instead of
// free-falling the whole column. Off-grid neighbors are treated as blocked:
// sand rests on the grid's bottom and side borders.
func (s *Settler) Tick(g *Grid) SettleResult {
	size := g.rows * g.cols
	if len(s.moved) < size {
		s.moved = make([]bool, size)
	} else {
		for i := 0; i < size; i++ {
			s.moved[i] = false
		}
	}

	var result SettleResult
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			src := g.index(row, col)
			if !g.cells[src].Occupied || s.moved[src] {
				continue
			}

			destRow := row + 1
			destCol := col
			switch {
			case g.isFree(destRow, col):
				// fall straight down
			case g.isFree(destRow, col-1):
				destCol = col - 1
			case g.isFree(destRow, col+1):
				destCol = col + 1
			default:
				continue // rest
			}

			color := g.cells[src].Color
			g.ClearCell(row, col)
			g.Place(destRow, destCol, color) //nolint:errcheck // isFree guarantees bounds
			s.moved[g.index(destRow, destCol)] = true
			result.Moves++
		}
	}

	return result
}

// isFree reports whether (row, col) is a legal move destination: inside the
// grid and empty.
func (g *Grid) isFree(row, col int) bool {
	return g.InBounds(row, col) && !g.cells[g.index(row, col)].Occupied
}
