// Package chart lays candles out on a canvas grid. Prices are synthetic
// relative units: the first candle anchors at a baseline constant and every
// later candle opens at the previous close, so the chart shape depends only
// on the submitted magnitudes.
package chart

import (
	"math"

	"github.com/yitech/candlechart/canvas"
	"github.com/yitech/candlechart/model/candle"
)

// Options are the layout and glyph tunables for one chart session.
type Options struct {
	// Buffer is the number of blank rows kept above the highest and below
	// the lowest wick.
	Buffer int
	// Stride is the column distance between consecutive candle centers.
	Stride int
	// LeftMargin is the column of the first candle's center.
	LeftMargin int
	// Baseline is the synthetic price the first candle closes (bullish) or
	// opens (bearish) at. Any constant works; it only fixes the scale.
	Baseline float64
	// Separation is the price nudge applied when two consecutive candles
	// share a direction, so their bodies do not visually merge.
	Separation float64
	// InitialHeight is the grid height before the first expansion.
	InitialHeight int

	BullishBody rune
	BearishBody rune
	Wick        rune
}

// DefaultOptions returns the standard layout: 1-row buffer, 6-column
// stride, 3-column left margin, baseline 100, separation 1.
func DefaultOptions() Options {
	return Options{
		Buffer:        1,
		Stride:        6,
		LeftMargin:    3,
		Baseline:      100,
		Separation:    1,
		InitialHeight: 7,
		BullishBody:   '█',
		BearishBody:   '▒',
		Wick:          '│',
	}
}

// normalized replaces unusable field values with defaults so that a partly
// filled Options literal still yields a working chart.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Stride <= 0 {
		o.Stride = def.Stride
	}
	if o.LeftMargin < 0 {
		o.LeftMargin = def.LeftMargin
	}
	if o.Buffer < 0 {
		o.Buffer = def.Buffer
	}
	if o.InitialHeight <= 2*o.Buffer {
		o.InitialHeight = def.InitialHeight
	}
	if o.BullishBody == 0 {
		o.BullishBody = def.BullishBody
	}
	if o.BearishBody == 0 {
		o.BearishBody = def.BearishBody
	}
	if o.Wick == 0 {
		o.Wick = def.Wick
	}
	return o
}

// Chart is one append-only charting session: the candles added so far, the
// running price bounds and the canvas they are painted on. A Chart is not
// safe for concurrent use; callers must serialize mutating calls.
type Chart struct {
	opts     Options
	canvas   *canvas.Canvas
	candles  []candle.Positioned
	minPrice float64
	maxPrice float64
}

// New creates an empty session. The initial canvas is InitialHeight rows by
// LeftMargin+Stride columns, enough for the first candle without a width
// expansion.
func New(opts Options) *Chart {
	opts = opts.normalized()
	return &Chart{
		opts:   opts,
		canvas: canvas.New(opts.LeftMargin+opts.Stride, opts.InitialHeight),
	}
}

// AddBullish appends a candle that closes above its open.
func (c *Chart) AddBullish(body, upperWick, lowerWick float64) *Chart {
	return c.Add(candle.Candle{Kind: candle.Bullish, Body: body, UpperWick: upperWick, LowerWick: lowerWick})
}

// AddBearish appends a candle that closes below its open.
func (c *Chart) AddBearish(body, upperWick, lowerWick float64) *Chart {
	return c.Add(candle.Candle{Kind: candle.Bearish, Body: body, UpperWick: upperWick, LowerWick: lowerWick})
}

// Add appends one candle: derives its price levels, grows the canvas if the
// new extent demands it and repaints the whole sequence. It returns the
// chart for chaining.
func (c *Chart) Add(in candle.Candle) *Chart {
	if len(c.candles) == 0 {
		c.addFirst(in)
	} else {
		c.addNext(in)
	}
	return c
}

// addFirst anchors the session at the baseline: the candle's upper body
// edge sits on Baseline and everything else hangs off it. Only the height
// can need growing here; the initial width already fits one candle.
func (c *Chart) addFirst(in candle.Candle) {
	base := c.opts.Baseline
	p := candle.Positioned{Candle: in, Column: c.opts.LeftMargin}
	p.High = base + in.UpperWick
	if in.Kind == candle.Bullish {
		p.Open = base - in.Body
		p.Close = base
	} else {
		p.Open = base
		p.Close = base - in.Body
	}
	p.Low = base - in.Body - in.LowerWick

	c.minPrice = p.Low
	c.maxPrice = p.High

	required := int(math.Ceil(in.Height())) + 2*c.opts.Buffer
	if required > c.canvas.Height() {
		c.canvas.Expand(c.canvas.Width(), required)
	}
	c.candles = append(c.candles, p)
	c.redraw()
}

// addNext opens at the previous close, nudged by Separation when the
// direction repeats. A direction change keeps open == previous close.
func (c *Chart) addNext(in candle.Candle) {
	prev := c.candles[len(c.candles)-1]
	open := prev.Close
	if in.Kind == prev.Kind {
		if in.Kind == candle.Bullish {
			open += c.opts.Separation
		} else {
			open -= c.opts.Separation
		}
	}

	p := candle.Positioned{Candle: in, Open: open}
	if in.Kind == candle.Bullish {
		p.Close = open + in.Body
		p.High = p.Close + in.UpperWick
		p.Low = open - in.LowerWick
	} else {
		p.Close = open - in.Body
		p.High = open + in.UpperWick
		p.Low = p.Close - in.LowerWick
	}

	c.minPrice = math.Min(c.minPrice, p.Low)
	c.maxPrice = math.Max(c.maxPrice, p.High)

	requiredHeight := int(math.Ceil(c.maxPrice-c.minPrice)) + 2*c.opts.Buffer
	requiredWidth := (len(c.candles)+1)*c.opts.Stride + c.opts.LeftMargin
	c.canvas.Expand(requiredWidth, requiredHeight)

	c.candles = append(c.candles, p)
	c.redraw()
}

// redraw clears the grid and repaints every candle left to right. A new
// candle can move the price bounds, which shifts every row mapping, so
// repainting only the newcomer is never sound.
func (c *Chart) redraw() {
	c.canvas.Clear()
	for i := range c.candles {
		c.candles[i].Column = c.columnFor(i)
		c.paint(c.candles[i])
	}
}

// Grid returns the underlying rune grid. Callers must treat it as
// read-only.
func (c *Chart) Grid() [][]rune { return c.canvas.Rows() }

// Dimensions returns the current grid extent.
func (c *Chart) Dimensions() (width, height int) {
	return c.canvas.Width(), c.canvas.Height()
}

// Candles returns the positioned candles in insertion order.
func (c *Chart) Candles() []candle.Positioned { return c.candles }

// PriceBounds returns the running minimum and maximum price across all
// candles added so far. Both are zero on an empty session.
func (c *Chart) PriceBounds() (min, max float64) {
	return c.minPrice, c.maxPrice
}

// Options returns the session's normalized options.
func (c *Chart) Options() Options { return c.opts }

// RenderPlain returns the bare grid as text, one line per row, with no axis
// decoration.
func (c *Chart) RenderPlain() string { return c.canvas.String() }
