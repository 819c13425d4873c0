// Package candle defines the chart's input candle type and its positioned,
// price-annotated form. Magnitudes are relative units on a synthetic scale;
// there are no timestamps and no absolute market prices.
package candle

import "math/rand"

// Kind tells whether a candle closes above or below its open.
type Kind int

const (
	Bullish Kind = iota
	Bearish
)

func (k Kind) String() string {
	if k == Bearish {
		return "bearish"
	}
	return "bullish"
}

// Candle is one chart input. All fields are non-negative magnitudes:
// Body is the open-to-close distance, the wicks extend above and below
// the body. A zero Body is a doji and still draws a single body row.
type Candle struct {
	Kind      Kind
	Body      float64
	UpperWick float64
	LowerWick float64
}

// Height is the candle's full vertical extent in price units.
func (c Candle) Height() float64 {
	return c.UpperWick + c.Body + c.LowerWick
}

// Positioned is a Candle after the chart has assigned it a grid column and
// derived its synthetic price levels. High and Low always bracket Open and
// Close; for a bullish candle Close ≥ Open, for a bearish one Close ≤ Open.
type Positioned struct {
	Candle
	Column int
	High   float64
	Open   float64
	Close  float64
	Low    float64
}

// BodyTop returns the higher of open and close.
func (p Positioned) BodyTop() float64 {
	if p.Open > p.Close {
		return p.Open
	}
	return p.Close
}

// BodyBottom returns the lower of open and close.
func (p Positioned) BodyBottom() float64 {
	if p.Open < p.Close {
		return p.Open
	}
	return p.Close
}

// Random returns a demo candle with modest magnitudes. The live and serve
// commands feed charts with these instead of real market data.
func Random(rng *rand.Rand) Candle {
	k := Bullish
	if rng.Intn(2) == 1 {
		k = Bearish
	}
	return Candle{
		Kind:      k,
		Body:      1 + float64(rng.Intn(4)),
		UpperWick: float64(rng.Intn(3)),
		LowerWick: float64(rng.Intn(3)),
	}
}
