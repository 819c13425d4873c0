package chart

import "github.com/yitech/candlechart/model/candle"

// paint draws one candle's wick and body glyphs into the canvas. The body
// is three columns wide centered on the candle's column; the wicks are a
// single bar at the center column. Every write goes through the canvas's
// bounds check, so a mapping outside the grid degrades to a dropped cell
// rather than a panic. The positioner expands before repainting, so in
// correct operation nothing is ever dropped.
func (c *Chart) paint(p candle.Positioned) {
	highRow := c.priceToRow(p.High)
	openRow := c.priceToRow(p.Open)
	closeRow := c.priceToRow(p.Close)
	lowRow := c.priceToRow(p.Low)

	bodyTop := min(openRow, closeRow)
	bodyBottom := max(openRow, closeRow)

	body := c.opts.BullishBody
	if p.Kind == candle.Bearish {
		body = c.opts.BearishBody
	}

	// A zero-height body still occupies one row.
	for row := bodyTop; row <= bodyBottom; row++ {
		for col := p.Column - 1; col <= p.Column+1; col++ {
			c.canvas.Set(row, col, body)
		}
	}
	for row := highRow; row < bodyTop; row++ {
		c.canvas.Set(row, p.Column, c.opts.Wick)
	}
	for row := bodyBottom + 1; row <= lowRow; row++ {
		c.canvas.Set(row, p.Column, c.opts.Wick)
	}
}
