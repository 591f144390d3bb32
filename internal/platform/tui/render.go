package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sandfall/internal/core"
)

// styleCache memoizes lipgloss styles per grain color. The palette draws
// from small channel ranges, so the cache stays tiny.
var styleCache = map[core.RGB]lipgloss.Style{}

func styleFor(c core.RGB) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = s
	return s
}

// RenderCanvas converts a canvas to a styled string for display. Each grid
// cell is drawn cellW characters wide and cellH lines tall, so the output
// covers the same terminal region the pointer mapping divides by. Adjacent
// cells with the same color are grouped into runs to minimize ANSI escape
// sequences.
func RenderCanvas(c *core.Canvas, cellW, cellH int) string {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}

	var sb strings.Builder
	sb.Grow((c.Width()*cellW*2 + 1) * c.Height() * cellH)

	for y := 0; y < c.Height(); y++ {
		line := renderLine(c, y, cellW)
		for i := 0; i < cellH; i++ {
			if y > 0 || i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// renderLine renders one canvas row as a single terminal line.
func renderLine(c *core.Canvas, y, cellW int) string {
	var sb strings.Builder

	x := 0
	for x < c.Width() {
		start := c.At(x, y)
		runLen := 1
		for x+runLen < c.Width() {
			next := c.At(x+runLen, y)
			if next.Set != start.Set || next.Color != start.Color {
				break
			}
			runLen++
		}

		if start.Set {
			run := strings.Repeat("█", runLen*cellW)
			sb.WriteString(styleFor(start.Color).Render(run))
		} else {
			sb.WriteString(strings.Repeat(" ", runLen*cellW))
		}
		x += runLen
	}

	return sb.String()
}
