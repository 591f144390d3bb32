// Package config provides YAML-based configuration loading for sandfall.
package config

// SandConfig contains all tunable parameters for the simulation.
type SandConfig struct {
	World   WorldConfig   `yaml:"world"`
	Sim     SimConfig     `yaml:"sim"`
	Palette PaletteConfig `yaml:"palette"`
}

// WorldConfig defines the canvas geometry.
type WorldConfig struct {
	// Width and Height of the world in terminal cells. Zero means
	// "fit the terminal at startup".
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// CellWidth and CellHeight are the scale factors between terminal
	// cells and grid cells. 2x1 gives roughly square grains.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// SimConfig defines simulation timing.
type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // Settling ticks per second
}

// PaletteConfig defines the random color ranges for fresh grains,
// one inclusive [min, max] pair per 8-bit channel.
type PaletteConfig struct {
	Red   ChannelConfig `yaml:"red"`
	Green ChannelConfig `yaml:"green"`
	Blue  ChannelConfig `yaml:"blue"`
}

// ChannelConfig is one channel's range.
type ChannelConfig struct {
	Min uint8 `yaml:"min"`
	Max uint8 `yaml:"max"`
}

// Normalize clamps nonsense values back to defaults so a partial or
// hand-edited config file cannot produce a broken simulation.
func (c *SandConfig) Normalize() {
	def := DefaultSandConfig()

	if c.World.CellWidth <= 0 {
		c.World.CellWidth = def.World.CellWidth
	}
	if c.World.CellHeight <= 0 {
		c.World.CellHeight = def.World.CellHeight
	}
	if c.World.Width < 0 {
		c.World.Width = 0
	}
	if c.World.Height < 0 {
		c.World.Height = 0
	}
	if c.Sim.TickRate <= 0 || c.Sim.TickRate > 240 {
		c.Sim.TickRate = def.Sim.TickRate
	}

	fixChannel(&c.Palette.Red, def.Palette.Red)
	fixChannel(&c.Palette.Green, def.Palette.Green)
	fixChannel(&c.Palette.Blue, def.Palette.Blue)
}

func fixChannel(ch *ChannelConfig, def ChannelConfig) {
	if ch.Min == 0 && ch.Max == 0 {
		*ch = def
		return
	}
	if ch.Max < ch.Min {
		ch.Max = ch.Min
	}
}
