package chart

import "math"

// priceToRow maps a price onto a canvas row. Row indices grow downward
// while prices grow upward, so the maximum price lands on the top buffer
// line and the minimum near the bottom one. The result is clamped to
// [Buffer, height-Buffer-1]. Rounding is half away from zero so ties
// resolve identically on every call.
//
// The mapping is pure in the current bounds and height: any resize or
// bound change invalidates previously computed rows, which is why every
// add triggers a full redraw.
func (c *Chart) priceToRow(price float64) int {
	if len(c.candles) == 0 || c.maxPrice == c.minPrice {
		return c.opts.Buffer
	}
	t := (c.maxPrice - price) / (c.maxPrice - c.minPrice)
	available := c.canvas.Height() - 2*c.opts.Buffer
	return c.clampRow(c.opts.Buffer + int(math.Round(t*float64(available))))
}

func (c *Chart) clampRow(row int) int {
	lo := c.opts.Buffer
	hi := c.canvas.Height() - c.opts.Buffer - 1
	if row < lo {
		return lo
	}
	if row > hi {
		return hi
	}
	return row
}

// RowPrice is the inverse of the price-to-row mapping, used by the overlay
// to label each grid row with the price it represents.
func (c *Chart) RowPrice(row int) float64 {
	if c.maxPrice == c.minPrice {
		return c.maxPrice
	}
	available := c.canvas.Height() - 2*c.opts.Buffer
	if available <= 0 {
		return c.maxPrice
	}
	t := float64(row-c.opts.Buffer) / float64(available)
	return c.maxPrice - t*(c.maxPrice-c.minPrice)
}

// columnFor returns the center column of the i-th candle.
func (c *Chart) columnFor(i int) int {
	return c.opts.LeftMargin + i*c.opts.Stride
}
