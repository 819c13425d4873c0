package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yitech/candlechart/model/candle"
)

func TestFirstBearishCandle(t *testing.T) {
	c := New(DefaultOptions()).AddBearish(3, 1, 2)

	require.Len(t, c.Candles(), 1)
	p := c.Candles()[0]
	assert.Equal(t, 101.0, p.High)
	assert.Equal(t, 100.0, p.Open)
	assert.Equal(t, 97.0, p.Close)
	assert.Equal(t, 95.0, p.Low)

	min, max := c.PriceBounds()
	assert.Equal(t, 95.0, min)
	assert.Equal(t, 101.0, max)

	// 3+1+2 price units plus one buffer row each side; the default height
	// of 7 must have grown.
	width, height := c.Dimensions()
	assert.Equal(t, 8, height)
	assert.Equal(t, 9, width)
}

func TestFirstBearishGrid(t *testing.T) {
	c := New(DefaultOptions()).AddBearish(3, 1, 2)

	want := strings.Join([]string{
		"         ",
		"   │     ",
		"  ▒▒▒    ",
		"  ▒▒▒    ",
		"  ▒▒▒    ",
		"  ▒▒▒    ",
		"   │     ",
		"         ",
	}, "\n")
	assert.Equal(t, want, c.RenderPlain())
}

func TestFirstBullishCandle(t *testing.T) {
	c := New(DefaultOptions()).AddBullish(2, 1, 1)

	p := c.Candles()[0]
	assert.Equal(t, 101.0, p.High)
	assert.Equal(t, 98.0, p.Open)
	assert.Equal(t, 100.0, p.Close)
	assert.Equal(t, 97.0, p.Low)
}

func TestOpenEqualsPreviousCloseOnDirectionChange(t *testing.T) {
	c := New(DefaultOptions()).AddBearish(3, 1, 2).AddBullish(2, 1, 1)

	require.Len(t, c.Candles(), 2)
	second := c.Candles()[1]
	assert.Equal(t, 97.0, second.Open, "direction changed, no separation")
	assert.Equal(t, 99.0, second.Close)
	assert.Equal(t, 100.0, second.High)
	assert.Equal(t, 96.0, second.Low)
}

func TestSameDirectionSeparation(t *testing.T) {
	t.Run("bullish pair", func(t *testing.T) {
		c := New(DefaultOptions()).AddBullish(2, 1, 1).AddBullish(1, 0, 0)
		first, second := c.Candles()[0], c.Candles()[1]
		assert.Equal(t, 100.0, first.Close)
		assert.Equal(t, 101.0, second.Open)
	})

	t.Run("bearish pair", func(t *testing.T) {
		c := New(DefaultOptions()).AddBearish(3, 1, 2).AddBearish(1, 0, 0)
		first, second := c.Candles()[0], c.Candles()[1]
		assert.Equal(t, 97.0, first.Close)
		assert.Equal(t, 96.0, second.Open)
	})
}

func TestWidthGrowsWithCandleCount(t *testing.T) {
	c := New(DefaultOptions()).AddBearish(3, 1, 2)
	w, _ := c.Dimensions()
	assert.Equal(t, 9, w)

	c.AddBullish(2, 1, 1)
	w, _ = c.Dimensions()
	assert.Equal(t, 15, w)

	c.AddBullish(2, 1, 1)
	w, _ = c.Dimensions()
	assert.Equal(t, 21, w)
}

func TestColumnsFollowStride(t *testing.T) {
	c := New(DefaultOptions()).
		AddBearish(3, 1, 2).
		AddBullish(2, 1, 1).
		AddBearish(1, 1, 1)

	for i, p := range c.Candles() {
		assert.Equal(t, 3+6*i, p.Column)
	}
}

func TestRedrawIsIdempotent(t *testing.T) {
	c := New(DefaultOptions()).
		AddBearish(3, 1, 2).
		AddBullish(2, 1, 1).
		AddBullish(1, 2, 0)

	first := c.RenderPlain()
	c.redraw()
	assert.Equal(t, first, c.RenderPlain())
}

func TestBodyHeightInvariant(t *testing.T) {
	c := New(DefaultOptions()).
		AddBearish(3, 1, 2).
		AddBullish(2, 1, 1).
		AddBullish(4, 0, 2).
		AddBearish(0, 1, 1)

	for i, p := range c.Candles() {
		openRow := c.priceToRow(p.Open)
		closeRow := c.priceToRow(p.Close)
		wantRows := abs(closeRow-openRow) + 1

		glyph := c.opts.BullishBody
		if p.Kind == candle.Bearish {
			glyph = c.opts.BearishBody
		}
		got := 0
		_, height := c.Dimensions()
		for row := 0; row < height; row++ {
			if c.Grid()[row][p.Column] == glyph {
				got++
			}
		}
		assert.Equal(t, wantRows, got, "candle %d", i)
	}
}

func TestZeroSizedCandle(t *testing.T) {
	c := New(DefaultOptions()).Add(candle.Candle{Kind: candle.Bullish})

	p := c.Candles()[0]
	assert.Equal(t, 100.0, p.High)
	assert.Equal(t, 100.0, p.Open)
	assert.Equal(t, 100.0, p.Close)
	assert.Equal(t, 100.0, p.Low)

	// Degenerate bounds map to the buffer row; the body still draws one
	// row, three columns wide, and nothing else.
	width, height := c.Dimensions()
	assert.Equal(t, 7, height)
	assert.Equal(t, 9, width)

	nonBlank := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if c.Grid()[row][col] != ' ' {
				nonBlank++
				assert.Equal(t, 1, row)
				assert.Equal(t, c.opts.BullishBody, c.Grid()[row][col])
			}
		}
	}
	assert.Equal(t, 3, nonBlank)
}

func TestZeroBodyDrawsSingleRowBetweenWicks(t *testing.T) {
	c := New(DefaultOptions()).AddBearish(4, 0, 0).Add(candle.Candle{Kind: candle.Bullish, UpperWick: 2, LowerWick: 2})

	p := c.Candles()[1]
	openRow := c.priceToRow(p.Open)
	closeRow := c.priceToRow(p.Close)
	assert.Equal(t, openRow, closeRow)
	assert.Equal(t, c.opts.BullishBody, c.Grid()[openRow][p.Column])
	assert.Equal(t, c.opts.Wick, c.Grid()[openRow-1][p.Column])
	assert.Equal(t, c.opts.Wick, c.Grid()[openRow+1][p.Column])
}

func TestPriceToRowDegenerateAndEmpty(t *testing.T) {
	c := New(DefaultOptions())
	assert.Equal(t, 1, c.priceToRow(123))

	c.Add(candle.Candle{Kind: candle.Bearish})
	min, max := c.PriceBounds()
	assert.Equal(t, min, max)
	assert.Equal(t, 1, c.priceToRow(min))
}

func TestOptionsNormalization(t *testing.T) {
	c := New(Options{})
	def := DefaultOptions()
	assert.Equal(t, def.Stride, c.opts.Stride)
	assert.Equal(t, def.InitialHeight, c.opts.InitialHeight)
	assert.Equal(t, def.BullishBody, c.opts.BullishBody)

	// Explicit zero buffer and margin survive normalization.
	c = New(Options{Buffer: 0, LeftMargin: 0, Stride: 4})
	assert.Equal(t, 0, c.opts.Buffer)
	assert.Equal(t, 0, c.opts.LeftMargin)
	assert.Equal(t, 4, c.opts.Stride)
}

func TestCustomGlyphsAndLayout(t *testing.T) {
	c := New(Options{Stride: 4, LeftMargin: 2, BullishBody: '#', BearishBody: '%', Wick: '|'}).
		AddBullish(2, 1, 1).
		AddBearish(2, 1, 1)

	assert.Contains(t, c.RenderPlain(), "#")
	assert.Contains(t, c.RenderPlain(), "%")
	assert.Contains(t, c.RenderPlain(), "|")
	assert.Equal(t, 2, c.Candles()[0].Column)
	assert.Equal(t, 6, c.Candles()[1].Column)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
