package sand

import (
	"testing"

	"sandfall/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		WorldW:   40,
		WorldH:   20,
		CellW:    2,
		CellH:    1,
		TickRate: 60,
		Seed:     12345,
	}
}

func heldAt(x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.Held = true
	in.PointerX = x
	in.PointerY = y
	return in
}

func released() core.InputFrame {
	in := core.NewInputFrame()
	in.Released = true
	return in
}

func TestGameDirectPlacement(t *testing.T) {
	g := New(DefaultPalette())
	g.Reset(testConfig())

	// Pointer at terminal (10, 4) with 2x1 cells maps to grid (4, 5)
	res := g.Step(heldAt(10, 4))

	if res.State.Painted != 1 {
		t.Errorf("Painted = %d, expected 1", res.State.Painted)
	}
	// The grain settled one row immediately after placement
	if !g.Grid().IsOccupied(5, 5) {
		t.Error("grain should have been placed at (4, 5) and settled to (5, 5)")
	}
}

func TestGameStrokeContinuity(t *testing.T) {
	cfg := testConfig()
	cfg.WorldH = 20
	g := New(DefaultPalette())
	g.Reset(cfg)

	rows := cfg.Rows()
	bottom := rows - 1

	// Paint along the bottom row so settling cannot move the line
	g.Step(heldAt(0, bottom))
	g.Step(heldAt(12, bottom)) // 6 grid columns right in a single tick

	for col := 0; col <= 6; col++ {
		if !g.Grid().IsOccupied(bottom, col) {
			t.Errorf("cell (%d, %d) should be occupied: fast drags must not leave gaps", bottom, col)
		}
	}
	if got := g.State().Painted; got != 7 {
		t.Errorf("Painted = %d, expected 7", got)
	}
}

func TestGameReleaseBreaksStroke(t *testing.T) {
	cfg := testConfig()
	g := New(DefaultPalette())
	g.Reset(cfg)

	bottom := cfg.Rows() - 1

	g.Step(heldAt(0, bottom))
	g.Step(released())
	g.Step(heldAt(12, bottom))

	// Two isolated dots, not a connected line
	if g.Grid().IsOccupied(bottom, 3) {
		t.Error("cells between separate strokes should stay empty")
	}
	if !g.Grid().IsOccupied(bottom, 0) || !g.Grid().IsOccupied(bottom, 6) {
		t.Error("both stroke endpoints should be occupied")
	}
	if got := g.State().Painted; got != 2 {
		t.Errorf("Painted = %d, expected 2", got)
	}
}

func TestGameSettlesWithoutInput(t *testing.T) {
	g := New(DefaultPalette())
	g.Reset(testConfig())

	g.Step(heldAt(10, 0))
	g.Step(released())

	// Physics continues with no pointer activity until the grain rests
	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}

	bottom := testConfig().Rows() - 1
	if !g.Grid().IsOccupied(bottom, 5) {
		t.Errorf("grain should have settled to the bottom row %d", bottom)
	}

	// And once at rest, further ticks change nothing
	before := g.Grid().Clone()
	res := g.Step(empty)
	if res.Moves != 0 {
		t.Errorf("Moves = %d at rest, expected 0", res.Moves)
	}
	if !g.Grid().Equal(before) {
		t.Error("resting grid changed")
	}
}

func TestGameColorPermanence(t *testing.T) {
	g := New(DefaultPalette())
	g.Reset(testConfig())

	g.Step(heldAt(10, 0))
	var placed core.RGB
	found := false
	g.Grid().Each(func(_, _ int, c core.RGB) {
		placed = c
		found = true
	})
	if !found {
		t.Fatal("expected one grain on the grid")
	}

	g.Step(released())
	empty := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(empty)
	}

	g.Grid().Each(func(_, _ int, c core.RGB) {
		if c != placed {
			t.Errorf("grain color changed from %v to %v while settling", placed, c)
		}
	})
}

func TestGamePauseAndRestart(t *testing.T) {
	g := New(DefaultPalette())
	g.Reset(testConfig())

	g.Step(heldAt(10, 4))
	g.Step(released())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.Grid().Clone()
	g.Step(core.NewInputFrame())
	if !g.Grid().Equal(before) {
		t.Error("paused game should not settle")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res = g.Step(restart)
	if got := res.State.Grains; got != 0 {
		t.Errorf("Grains = %d after restart, expected 0", got)
	}
	if got := res.State.Painted; got != 0 {
		t.Errorf("Painted = %d after restart, expected 0", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and input sequence must produce identical grids
	cfg := testConfig()

	script := make([]core.InputFrame, 0, 120)
	for x := 0; x < 30; x++ {
		script = append(script, heldAt(x, 3))
	}
	script = append(script, released())
	for x := 30; x > 5; x -= 2 {
		script = append(script, heldAt(x, 8))
	}
	script = append(script, released())
	for i := 0; i < 40; i++ {
		script = append(script, core.NewInputFrame())
	}

	run := func() *Grid {
		g := New(DefaultPalette())
		g.Reset(cfg)
		for _, in := range script {
			g.Step(in.Clone())
		}
		return g.Grid()
	}

	g1, g2 := run(), run()
	if !g1.Equal(g2) {
		t.Error("determinism failed: identical seed and inputs produced different grids")
	}
}

func TestGameOffCanvasPointerIsRecoverable(t *testing.T) {
	cfg := testConfig()
	g := New(DefaultPalette())
	g.Reset(cfg)

	bottom := cfg.Rows() - 1

	// Pointer dragged past the right edge and back: off-grid cells are
	// skipped, the simulation keeps running, the stroke reconnects
	g.Step(heldAt(cfg.WorldW+20, bottom))
	g.Step(heldAt(cfg.WorldW-2, bottom))
	g.Step(heldAt(cfg.WorldW-8, bottom))

	if !g.Grid().IsOccupied(bottom, cfg.Cols()-1) {
		t.Error("cells inside the grid along the stroke should be occupied")
	}
	if !g.Grid().IsOccupied(bottom, cfg.Cols()-4) {
		t.Error("stroke should continue once the pointer returns on-canvas")
	}
}
