package config

import (
	_ "embed"
)

//go:embed defaults/sand.yaml
var defaultSandYAML []byte

// DefaultSandConfig returns the hardcoded default configuration, used as
// the last-resort fallback if the embedded YAML fails to parse.
func DefaultSandConfig() SandConfig {
	return SandConfig{
		World: WorldConfig{
			Width:      0, // fit terminal
			Height:     0,
			CellWidth:  2,
			CellHeight: 1,
		},
		Sim: SimConfig{
			TickRate: 60,
		},
		Palette: PaletteConfig{
			Red:   ChannelConfig{Min: 200, Max: 219},
			Green: ChannelConfig{Min: 170, Max: 189},
			Blue:  ChannelConfig{Min: 60, Max: 69},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML, for `sandfall config`.
func GetDefaultYAML() []byte {
	return defaultSandYAML
}
