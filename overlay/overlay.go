// Package overlay composites axis and label decoration around a finished
// chart grid. It reads the chart through its public surface and never
// mutates the canvas.
package overlay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yitech/candlechart/chart"
)

var (
	bullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641"))
	bearStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05c5c"))
	wickStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// axisWidth is the width of the y-axis gutter: "   123.45 │".
const axisWidth = 11

// Options selects the decoration applied around the grid.
type Options struct {
	// Color styles glyphs and axes with ANSI colors. Off, the output is
	// plain text suitable for markdown code blocks.
	Color bool
	// Ticks prints each candle's ordinal under its column.
	Ticks bool
}

// Render returns the chart as a text block: each grid row prefixed with the
// price it represents, then an x-axis rule, then optional ordinal ticks.
func Render(c *chart.Chart, o Options) string {
	width, height := c.Dimensions()
	grid := c.Grid()
	opts := c.Options()

	var b strings.Builder
	for row := 0; row < height; row++ {
		label := fmt.Sprintf("%9.2f │", c.RowPrice(row))
		b.WriteString(styled(axisStyle, label, o.Color))
		for _, r := range grid[row] {
			b.WriteString(styled(cellStyle(r, opts), string(r), o.Color))
		}
		b.WriteByte('\n')
	}

	b.WriteString(styled(axisStyle, strings.Repeat("─", axisWidth+width), o.Color))
	if o.Ticks {
		b.WriteByte('\n')
		b.WriteString(styled(axisStyle, tickLine(c), o.Color))
	}
	return b.String()
}

// cellStyle picks the style for one grid rune by matching it against the
// chart's glyph set.
func cellStyle(r rune, opts chart.Options) lipgloss.Style {
	switch r {
	case opts.BullishBody:
		return bullStyle
	case opts.BearishBody:
		return bearStyle
	case opts.Wick:
		return wickStyle
	}
	return axisStyle
}

func styled(s lipgloss.Style, text string, color bool) string {
	if !color {
		return text
	}
	return s.Render(text)
}

// tickLine prints every candle's 1-based ordinal centered under its column.
func tickLine(c *chart.Chart) string {
	width, _ := c.Dimensions()
	line := make([]rune, axisWidth+width)
	for i := range line {
		line[i] = ' '
	}
	for i, p := range c.Candles() {
		label := []rune(strconv.Itoa(i + 1))
		start := axisWidth + p.Column - len(label)/2
		for j, r := range label {
			if pos := start + j; pos >= 0 && pos < len(line) {
				line[pos] = r
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}

// Legend summarizes the last candle in one line, for headers above a chart.
func Legend(c *chart.Chart) string {
	cs := c.Candles()
	if len(cs) == 0 {
		return "no candles"
	}
	last := cs[len(cs)-1]
	return fmt.Sprintf("%d candles  last: %s  O:%.2f H:%.2f L:%.2f C:%.2f",
		len(cs), last.Kind, last.Open, last.High, last.Low, last.Close)
}
