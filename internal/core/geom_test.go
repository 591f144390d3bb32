package core

import "testing"

func TestAbsMax(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs is wrong")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max is wrong")
	}
}

func TestRuntimeConfigDerivedDims(t *testing.T) {
	cfg := RuntimeConfig{WorldW: 80, WorldH: 24, CellW: 2, CellH: 1}

	if got := cfg.Cols(); got != 40 {
		t.Errorf("Cols() = %d, expected 40", got)
	}
	if got := cfg.Rows(); got != 24 {
		t.Errorf("Rows() = %d, expected 24", got)
	}

	// Degenerate scale factors yield an empty grid rather than dividing by zero
	bad := RuntimeConfig{WorldW: 80, WorldH: 24}
	if bad.Cols() != 0 || bad.Rows() != 0 {
		t.Error("zero cell scale should derive zero dimensions")
	}
}

func TestInputFrameActions(t *testing.T) {
	in := NewInputFrame()

	if in.Has(ActionPause) {
		t.Error("new frame should have no actions")
	}

	in.Set(ActionPause)
	in.Held = true
	in.Released = true
	if !in.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true after Set")
	}

	clone := in.Clone()

	in.Clear()
	if in.Has(ActionPause) {
		t.Error("Clear should drop actions")
	}
	if in.Released {
		t.Error("Clear should drop the one-shot Released flag")
	}
	if !in.Held {
		t.Error("Clear should preserve Held")
	}

	// Clone is unaffected by Clear
	if !clone.Has(ActionPause) || !clone.Released {
		t.Error("clone should keep its own state")
	}
}
