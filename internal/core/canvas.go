package core

// CanvasCell is a single cell of the render buffer: either unset (background)
// or set with a color.
type CanvasCell struct {
	Set   bool
	Color RGB
}

// Canvas is a 2D colored cell buffer for rendering. It decouples the
// simulation from the terminal: the game writes colored cells, the platform
// turns them into styled output. Out-of-bounds writes are silently ignored,
// out-of-bounds reads return an unset cell.
type Canvas struct {
	width  int
	height int
	cells  []CanvasCell
}

// NewCanvas creates a new canvas with the given dimensions, all cells unset.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]CanvasCell, width*height),
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Clear unsets every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = CanvasCell{}
	}
}

// Set colors the cell at (x, y). Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, color RGB) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = CanvasCell{Set: true, Color: color}
}

// At returns the cell at (x, y), or an unset cell for out-of-bounds reads.
func (c *Canvas) At(x, y int) CanvasCell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return CanvasCell{}
	}
	return c.cells[y*c.width+x]
}

// SetCount returns the number of set cells.
func (c *Canvas) SetCount() int {
	n := 0
	for _, cell := range c.cells {
		if cell.Set {
			n++
		}
	}
	return n
}
