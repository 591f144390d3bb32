package tui

import (
	"sandfall/internal/config"
	"sandfall/internal/core"
	"sandfall/internal/sand"
)

// BuildRuntime derives the per-session runtime config from the file
// configuration and the available terminal size. One line is reserved for
// the HUD. fps and seed override the file values when non-zero.
func BuildRuntime(sc config.SandConfig, termW, termH, fps int, seed int64) core.RuntimeConfig {
	worldW, worldH := termW, termH-1
	if sc.World.Width > 0 && sc.World.Width < worldW {
		worldW = sc.World.Width
	}
	if sc.World.Height > 0 && sc.World.Height < worldH {
		worldH = sc.World.Height
	}

	tickRate := sc.Sim.TickRate
	if fps > 0 {
		tickRate = fps
	}

	return core.RuntimeConfig{
		WorldW:   core.Max(worldW, 1),
		WorldH:   core.Max(worldH, 1),
		CellW:    sc.World.CellWidth,
		CellH:    sc.World.CellHeight,
		TickRate: tickRate,
		Seed:     seed,
	}
}

// BuildPalette converts the file palette configuration to a simulation
// palette.
func BuildPalette(sc config.SandConfig) sand.Palette {
	return sand.Palette{
		Red:   sand.ChannelRange{Min: sc.Palette.Red.Min, Max: sc.Palette.Red.Max},
		Green: sand.ChannelRange{Min: sc.Palette.Green.Min, Max: sc.Palette.Green.Max},
		Blue:  sand.ChannelRange{Min: sc.Palette.Blue.Min, Max: sc.Palette.Blue.Max},
	}
}
