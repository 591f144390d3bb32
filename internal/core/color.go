package core

import "fmt"

// RGB is a 24-bit color with three independent 8-bit channels.
// A grain keeps its color for its entire lifetime; it moves with the grain.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
