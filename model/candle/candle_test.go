package candle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeight(t *testing.T) {
	tests := []struct {
		name string
		c    Candle
		want float64
	}{
		{"all parts", Candle{Body: 3, UpperWick: 1, LowerWick: 2}, 6},
		{"body only", Candle{Body: 2}, 2},
		{"zero", Candle{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Height())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "bullish", Bullish.String())
	assert.Equal(t, "bearish", Bearish.String())
}

func TestBodyEdges(t *testing.T) {
	bull := Positioned{Candle: Candle{Kind: Bullish}, Open: 98, Close: 100}
	assert.Equal(t, 100.0, bull.BodyTop())
	assert.Equal(t, 98.0, bull.BodyBottom())

	bear := Positioned{Candle: Candle{Kind: Bearish}, Open: 100, Close: 97}
	assert.Equal(t, 100.0, bear.BodyTop())
	assert.Equal(t, 97.0, bear.BodyBottom())

	doji := Positioned{Open: 100, Close: 100}
	assert.Equal(t, doji.BodyTop(), doji.BodyBottom())
}

func TestRandomStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		c := Random(rng)
		assert.GreaterOrEqual(t, c.Body, 1.0)
		assert.LessOrEqual(t, c.Body, 4.0)
		assert.GreaterOrEqual(t, c.UpperWick, 0.0)
		assert.LessOrEqual(t, c.UpperWick, 2.0)
		assert.GreaterOrEqual(t, c.LowerWick, 0.0)
		assert.LessOrEqual(t, c.LowerWick, 2.0)
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a := rand.New(rand.NewSource(11))
	b := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		assert.Equal(t, Random(a), Random(b))
	}
}
