package sand

import (
	"testing"

	"sandfall/internal/core"
)

func TestGridPlaceAndQuery(t *testing.T) {
	g := NewGrid(10, 10)

	color := core.RGB{R: 210, G: 180, B: 65}
	if err := g.Place(3, 4, color); err != nil {
		t.Fatalf("Place(3, 4) failed: %v", err)
	}

	if !g.IsOccupied(3, 4) {
		t.Error("cell (3, 4) should be occupied after Place")
	}
	if got := g.At(3, 4).Color; got != color {
		t.Errorf("At(3, 4).Color = %v, expected %v", got, color)
	}
	if g.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", g.Count())
	}
}

func TestGridPlaceOutOfBounds(t *testing.T) {
	g := NewGrid(10, 10)
	before := g.Clone()

	color := core.RGB{R: 210, G: 180, B: 65}
	cases := [][2]int{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-1, -1}, {100, 100},
	}
	for _, c := range cases {
		if err := g.Place(c[0], c[1], color); err != ErrOutOfBounds {
			t.Errorf("Place(%d, %d) = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
	}

	// Grid must be unchanged after rejected placements
	if !g.Equal(before) {
		t.Error("grid changed after out-of-bounds placements")
	}
}

func TestGridOffGridReadsAreEmpty(t *testing.T) {
	g := NewGrid(4, 4)

	// Off-grid neighbors read as permanently empty, no error path
	if g.IsOccupied(-1, 0) || g.IsOccupied(4, 0) || g.IsOccupied(0, -1) || g.IsOccupied(0, 4) {
		t.Error("out-of-bounds IsOccupied should be false")
	}
	if c := g.At(99, 99); c.Occupied {
		t.Error("out-of-bounds At should return an empty cell")
	}
}

func TestGridPlaceOverwritesColor(t *testing.T) {
	g := NewGrid(5, 5)

	first := core.RGB{R: 200, G: 170, B: 60}
	second := core.RGB{R: 219, G: 189, B: 69}

	g.Place(2, 2, first)
	g.Place(2, 2, second)

	if got := g.At(2, 2).Color; got != second {
		t.Errorf("Place should overwrite color, got %v, expected %v", got, second)
	}
	if g.Count() != 1 {
		t.Errorf("Count() = %d, expected 1 after double placement", g.Count())
	}
}

func TestGridClearCell(t *testing.T) {
	g := NewGrid(5, 5)
	g.Place(1, 1, core.RGB{R: 210, G: 180, B: 65})

	g.ClearCell(1, 1)
	if g.IsOccupied(1, 1) {
		t.Error("cell should be empty after ClearCell")
	}

	// Out of bounds should be silent
	g.ClearCell(-1, 0)
	g.ClearCell(5, 5)
}

func TestGridEachRowMajorOrder(t *testing.T) {
	g := NewGrid(3, 3)
	color := core.RGB{R: 210, G: 180, B: 65}
	g.Place(2, 0, color)
	g.Place(0, 1, color)
	g.Place(1, 2, color)
	g.Place(0, 0, color)

	var visited [][2]int
	g.Each(func(row, col int, _ core.RGB) {
		visited = append(visited, [2]int{row, col})
	})

	expected := [][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 0}}
	if len(visited) != len(expected) {
		t.Fatalf("Each visited %d cells, expected %d", len(visited), len(expected))
	}
	for i, pos := range expected {
		if visited[i] != pos {
			t.Errorf("Each order[%d] = %v, expected %v", i, visited[i], pos)
		}
	}
}

func TestGridResetAndClone(t *testing.T) {
	g := NewGrid(5, 5)
	g.Place(0, 0, core.RGB{R: 200, G: 170, B: 60})
	g.Place(4, 4, core.RGB{R: 219, G: 189, B: 69})

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Error("clone should equal the original")
	}

	g.Reset()
	if g.Count() != 0 {
		t.Errorf("Count() = %d after Reset, expected 0", g.Count())
	}
	// Clone must be unaffected by the reset
	if clone.Count() != 2 {
		t.Errorf("clone Count() = %d after original Reset, expected 2", clone.Count())
	}
}
