package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yitech/candlechart/model/candle"
)

// CandleSpec is one candle in a yaml candle list.
type CandleSpec struct {
	Kind      string  `yaml:"kind"`
	Body      float64 `yaml:"body"`
	UpperWick float64 `yaml:"upper_wick"`
	LowerWick float64 `yaml:"lower_wick"`
}

type candleList struct {
	Candles []CandleSpec `yaml:"candles"`
}

// LoadCandles reads a yaml candle list, e.g.
//
//	candles:
//	  - {kind: bearish, body: 3, upper_wick: 1, lower_wick: 2}
//	  - {kind: bullish, body: 2, upper_wick: 1, lower_wick: 1}
func LoadCandles(path string) ([]candle.Candle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candle file: %w", err)
	}
	var list candleList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse candle file: %w", err)
	}

	out := make([]candle.Candle, 0, len(list.Candles))
	for i, spec := range list.Candles {
		c, err := spec.toCandle()
		if err != nil {
			return nil, fmt.Errorf("candle %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s CandleSpec) toCandle() (candle.Candle, error) {
	var kind candle.Kind
	switch s.Kind {
	case "bullish":
		kind = candle.Bullish
	case "bearish":
		kind = candle.Bearish
	default:
		return candle.Candle{}, fmt.Errorf("kind must be bullish or bearish, got %q", s.Kind)
	}
	if s.Body < 0 || s.UpperWick < 0 || s.LowerWick < 0 {
		return candle.Candle{}, fmt.Errorf("sizes must not be negative")
	}
	return candle.Candle{Kind: kind, Body: s.Body, UpperWick: s.UpperWick, LowerWick: s.LowerWick}, nil
}
