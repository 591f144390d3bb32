package sand

import (
	"math/rand"

	"sandfall/internal/core"
)

// ChannelRange is an inclusive [Min, Max] range for one 8-bit color channel.
type ChannelRange struct {
	Min, Max uint8
}

// Palette generates grain colors by drawing each channel independently from
// a bounded range. Colors are assigned once at placement and never change.
type Palette struct {
	Red   ChannelRange
	Green ChannelRange
	Blue  ChannelRange
}

// DefaultPalette returns the cartoonish darker-sand palette:
// red 200-219, green 170-189, blue 60-69.
func DefaultPalette() Palette {
	return Palette{
		Red:   ChannelRange{Min: 200, Max: 219},
		Green: ChannelRange{Min: 170, Max: 189},
		Blue:  ChannelRange{Min: 60, Max: 69},
	}
}

// Vary draws a fresh grain color from the palette using the given RNG.
func (p Palette) Vary(rng *rand.Rand) core.RGB {
	return core.RGB{
		R: p.Red.draw(rng),
		G: p.Green.draw(rng),
		B: p.Blue.draw(rng),
	}
}

func (r ChannelRange) draw(rng *rand.Rand) uint8 {
	if r.Max <= r.Min {
		return r.Min
	}
	span := int(r.Max) - int(r.Min) + 1
	return r.Min + uint8(rng.Intn(span))
}
