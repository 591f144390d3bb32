package sand

import (
	"math/rand"
	"testing"

	"sandfall/internal/core"
)

func TestInterpolateHorizontalContinuity(t *testing.T) {
	g := NewGrid(10, 10)
	rng := rand.New(rand.NewSource(1))

	// Pointer moved 4 columns in one tick: (5,5) -> (5,9)
	placed := InterpolateStroke(g, DefaultPalette(), rng, 5, 5, 5, 9)

	if placed != 5 {
		t.Errorf("placed = %d, expected 5", placed)
	}
	for col := 5; col <= 9; col++ {
		if !g.IsOccupied(5, col) {
			t.Errorf("cell (5, %d) should be occupied after interpolation", col)
		}
	}
	if g.Count() != 5 {
		t.Errorf("Count() = %d, expected 5", g.Count())
	}
}

func TestInterpolateDiagonalIsConnected(t *testing.T) {
	g := NewGrid(20, 20)
	rng := rand.New(rand.NewSource(2))

	InterpolateStroke(g, DefaultPalette(), rng, 2, 3, 11, 17)

	// Both endpoints placed
	if !g.IsOccupied(2, 3) || !g.IsOccupied(11, 17) {
		t.Fatal("stroke endpoints should be occupied")
	}

	// Every occupied cell except the start has an occupied 8-neighbor:
	// no gaps along the rasterized line
	g.Each(func(row, col int, _ core.RGB) {
		if row == 2 && col == 3 {
			return
		}
		connected := false
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if g.IsOccupied(row+dr, col+dc) {
					connected = true
				}
			}
		}
		if !connected {
			t.Errorf("cell (%d, %d) is isolated; the stroke has a gap", row, col)
		}
	})
}

func TestInterpolateDoesNotOverwriteExistingSand(t *testing.T) {
	g := NewGrid(10, 10)
	rng := rand.New(rand.NewSource(3))

	existing := core.RGB{R: 1, G: 2, B: 3}
	g.Place(5, 7, existing)

	placed := InterpolateStroke(g, DefaultPalette(), rng, 5, 5, 5, 9)

	if placed != 4 {
		t.Errorf("placed = %d, expected 4 (one cell was already occupied)", placed)
	}
	if got := g.At(5, 7).Color; got != existing {
		t.Errorf("existing sand recolored to %v, expected %v preserved", got, existing)
	}
}

func TestInterpolateEqualEndpoints(t *testing.T) {
	g := NewGrid(10, 10)
	rng := rand.New(rand.NewSource(4))

	if placed := InterpolateStroke(g, DefaultPalette(), rng, 4, 4, 4, 4); placed != 1 {
		t.Errorf("placed = %d, expected 1 for a single-cell path", placed)
	}
	if !g.IsOccupied(4, 4) {
		t.Error("cell (4, 4) should be occupied")
	}

	// Same endpoint again: already occupied, no-op
	if placed := InterpolateStroke(g, DefaultPalette(), rng, 4, 4, 4, 4); placed != 0 {
		t.Errorf("placed = %d on occupied cell, expected 0", placed)
	}
}

func TestInterpolateSkipsOffGridSegment(t *testing.T) {
	g := NewGrid(10, 10)
	rng := rand.New(rand.NewSource(5))

	// Stroke from off-canvas back onto it: off-grid cells skipped, the
	// in-bounds remainder still drawn
	placed := InterpolateStroke(g, DefaultPalette(), rng, 5, -3, 5, 2)

	if placed != 3 {
		t.Errorf("placed = %d, expected 3 in-bounds cells", placed)
	}
	for col := 0; col <= 2; col++ {
		if !g.IsOccupied(5, col) {
			t.Errorf("cell (5, %d) should be occupied", col)
		}
	}
}
