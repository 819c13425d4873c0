// Package canvas provides a resizable 2-D grid of display runes. It knows
// nothing about candles: the chart package draws into it and the overlay
// package reads it back out.
package canvas

import "strings"

// Blank is the default cell content.
const Blank = ' '

// Canvas is a height×width grid of single display runes. The extent only
// ever grows over the lifetime of a chart; it never shrinks.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// New allocates a blank canvas. Negative extents are treated as zero.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{cells: blankGrid(width, height), width: width, height: height}
}

func blankGrid(width, height int) [][]rune {
	g := make([][]rune, height)
	for r := range g {
		g[r] = make([]rune, width)
		for c := range g[r] {
			g[r][c] = Blank
		}
	}
	return g
}

// Expand grows the grid to at least width×height, keeping every existing
// cell at its original (row, col). Each axis is clamped to its current
// extent, so a request smaller than the grid is a no-op on that axis.
func (c *Canvas) Expand(width, height int) {
	if width <= c.width && height <= c.height {
		return
	}
	if width < c.width {
		width = c.width
	}
	if height < c.height {
		height = c.height
	}
	next := blankGrid(width, height)
	for r := 0; r < c.height; r++ {
		copy(next[r], c.cells[r])
	}
	c.cells = next
	c.width = width
	c.height = height
}

// Set writes one rune at (row, col). Out-of-range writes are dropped.
func (c *Canvas) Set(row, col int, r rune) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.cells[row][col] = r
}

// At returns the rune at (row, col), or Blank when out of range.
func (c *Canvas) At(row, col int) rune {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return Blank
	}
	return c.cells[row][col]
}

// Clear blanks every cell without changing the extent.
func (c *Canvas) Clear() {
	for r := range c.cells {
		for col := range c.cells[r] {
			c.cells[r][col] = Blank
		}
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Rows exposes the grid for presentation passes. Callers must treat the
// returned slices as read-only.
func (c *Canvas) Rows() [][]rune { return c.cells }

// String joins the rows into a text block, one line per grid row.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.width + 1) * c.height)
	for r, row := range c.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
