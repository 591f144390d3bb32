// Package sand implements the falling-sand simulation: a fixed grid the
// user paints grains onto, settled one step per tick. The package is
// UI-agnostic and deterministic under a seeded RNG; the platform layer
// supplies input and consumes the rendered grid.
package sand

import (
	"math/rand"

	"sandfall/internal/core"
)

// Game is the frame driver. Each Step it applies pointer input to the grid
// (direct placement or stroke interpolation), runs the settling engine
// exactly once, and exposes the grid for rendering.
type Game struct {
	grid    *Grid
	settler *Settler
	palette Palette
	rng     *rand.Rand
	config  core.RuntimeConfig

	// Stroke state: the previous pointer cell, or none. Reset whenever
	// the pointer is released so strokes don't connect across presses.
	hasPrev bool
	prevRow int
	prevCol int

	painted int
	ticks   uint64
	paused  bool
}

// New creates a game with the given palette. Call Reset before stepping.
func New(palette Palette) *Game {
	return &Game{palette: palette}
}

// Title returns the display name for this simulation.
func (g *Game) Title() string {
	return "Sandfall"
}

// Reset initializes or restarts the simulation. Grid dimensions are derived
// from the world size and cell scale and stay fixed for the session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.grid = NewGrid(cfg.Rows(), cfg.Cols())
	g.settler = NewSettler()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.hasPrev = false
	g.painted = 0
	g.ticks = 0
	g.paused = false
}

// Step advances the simulation by one tick: apply input, settle once, done.
// Settling runs every tick regardless of pointer activity, so the pile keeps
// converging to rest with no input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.grid.Reset()
		g.hasPrev = false
		g.painted = 0
		g.ticks = 0
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if in.Released || !in.Held {
		g.hasPrev = false
	}

	if in.Held && !g.paused {
		g.paint(in.PointerX, in.PointerY)
	}

	var moves int
	if !g.paused {
		moves = g.settler.Tick(g.grid).Moves
		g.ticks++
	}

	return core.StepResult{State: g.State(), Moves: moves}
}

// paint places sand at the pointer position, interpolating from the
// previous stroke cell when one exists.
func (g *Game) paint(px, py int) {
	row := py / g.config.CellH
	col := px / g.config.CellW

	if g.hasPrev {
		g.painted += InterpolateStroke(g.grid, g.palette, g.rng, g.prevRow, g.prevCol, row, col)
	} else if err := g.grid.Place(row, col, g.palette.Vary(g.rng)); err == nil {
		g.painted++
	}
	// ErrOutOfBounds: pointer is off-canvas, skip and keep going. The
	// off-grid cell still becomes the stroke anchor so dragging back onto
	// the canvas draws a connected line from the edge.

	g.hasPrev = true
	g.prevRow = row
	g.prevCol = col
}

// Render writes the current grid snapshot into the canvas.
func (g *Game) Render(dst *core.Canvas) {
	dst.Clear()
	g.grid.Each(func(row, col int, color core.RGB) {
		dst.Set(col, row, color)
	})
}

// State returns the current simulation state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Grains:  g.grid.Count(),
		Painted: g.painted,
		Ticks:   g.ticks,
		Paused:  g.paused,
	}
}

// Grid exposes the underlying grid. Tests and tooling only; the platform
// renders through Render.
func (g *Game) Grid() *Grid {
	return g.grid
}
