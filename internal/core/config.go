package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
// Grid dimensions are derived from the world size and cell scale once, at
// Reset time; the grid never resizes mid-session.
type RuntimeConfig struct {
	WorldW   int   // World width in terminal columns
	WorldH   int   // World height in terminal rows
	CellW    int   // Terminal columns per grid cell (horizontal scale factor)
	CellH    int   // Terminal rows per grid cell (vertical scale factor)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic palettes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   80,
		WorldH:   24,
		CellW:    2,
		CellH:    1,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Rows returns the derived grid row count.
func (c RuntimeConfig) Rows() int {
	if c.CellH <= 0 {
		return 0
	}
	return c.WorldH / c.CellH
}

// Cols returns the derived grid column count.
func (c RuntimeConfig) Cols() int {
	if c.CellW <= 0 {
		return 0
	}
	return c.WorldW / c.CellW
}

// GameState represents the current state of the simulation.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Grains  int    // Grains currently on the grid
	Painted int    // Grains placed by the user this session
	Ticks   uint64 // Settling ticks run this session
	Paused  bool   // Whether settling is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moves int // Grains that moved during this tick's settling pass
}
