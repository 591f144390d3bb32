package sand

import (
	"math/rand"

	"sandfall/internal/core"
)

// InterpolateStroke places sand along the integer line from (r1, c1) to
// (r2, c2) using Bresenham rasterization, so a fast pointer drag leaves a
// continuous line rather than isolated dots.
//
// Every visited cell that is empty gets a freshly varied color; cells that
// already hold sand are left untouched. Cells outside the grid are skipped.
// Equal endpoints degrade to a single-cell placement. Returns the number of
// grains placed.
func InterpolateStroke(g *Grid, p Palette, rng *rand.Rand, r1, c1, r2, c2 int) int {
	dx := core.Abs(c2 - c1)
	dy := core.Abs(r2 - r1)
	sx := 1
	if c1 > c2 {
		sx = -1
	}
	sy := 1
	if r1 > r2 {
		sy = -1
	}
	err := dx - dy

	placed := 0
	row, col := r1, c1
	for {
		if g.InBounds(row, col) && !g.IsOccupied(row, col) {
			g.Place(row, col, p.Vary(rng)) //nolint:errcheck // in bounds by check above
			placed++
		}

		if row == r2 && col == c2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			col += sx
		}
		if e2 < dx {
			err += dx
			row += sy
		}
	}

	return placed
}
