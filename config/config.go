// Package config loads chart styling and layout options from yaml files.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/yitech/candlechart/chart"
	"github.com/yitech/candlechart/overlay"
)

// Config is the on-disk representation of a chart style.
type Config struct {
	Chart   ChartConfig   `yaml:"chart"`
	Overlay OverlayConfig `yaml:"overlay"`
}

// ChartConfig mirrors chart.Options with yaml-friendly field types; glyphs
// are strings and must each hold exactly one rune.
type ChartConfig struct {
	Buffer        int     `yaml:"buffer"`
	Stride        int     `yaml:"stride"`
	LeftMargin    int     `yaml:"left_margin"`
	Baseline      float64 `yaml:"baseline"`
	Separation    float64 `yaml:"separation"`
	InitialHeight int     `yaml:"initial_height"`
	BullishBody   string  `yaml:"bullish_body"`
	BearishBody   string  `yaml:"bearish_body"`
	Wick          string  `yaml:"wick"`
}

// OverlayConfig selects the decoration around the grid.
type OverlayConfig struct {
	Color bool `yaml:"color"`
	Ticks bool `yaml:"ticks"`
}

// Default returns a configuration matching chart.DefaultOptions.
func Default() *Config {
	o := chart.DefaultOptions()
	return &Config{
		Chart: ChartConfig{
			Buffer:        o.Buffer,
			Stride:        o.Stride,
			LeftMargin:    o.LeftMargin,
			Baseline:      o.Baseline,
			Separation:    o.Separation,
			InitialHeight: o.InitialHeight,
			BullishBody:   string(o.BullishBody),
			BearishBody:   string(o.BearishBody),
			Wick:          string(o.Wick),
		},
		Overlay: OverlayConfig{Ticks: true},
	}
}

// LoadFromFile reads and validates a yaml config.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as yaml.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Chart.Stride <= 0 {
		return fmt.Errorf("chart.stride must be positive")
	}
	if c.Chart.LeftMargin < 0 {
		return fmt.Errorf("chart.left_margin must not be negative")
	}
	if c.Chart.Buffer < 0 {
		return fmt.Errorf("chart.buffer must not be negative")
	}
	if c.Chart.InitialHeight <= 2*c.Chart.Buffer {
		return fmt.Errorf("chart.initial_height must exceed twice the buffer")
	}
	if c.Chart.Separation < 0 {
		return fmt.Errorf("chart.separation must not be negative")
	}
	for name, glyph := range map[string]string{
		"chart.bullish_body": c.Chart.BullishBody,
		"chart.bearish_body": c.Chart.BearishBody,
		"chart.wick":         c.Chart.Wick,
	} {
		if utf8.RuneCountInString(glyph) != 1 {
			return fmt.Errorf("%s must be exactly one character, got %q", name, glyph)
		}
	}
	return nil
}

// ChartOptions converts the config into chart.Options.
func (c *Config) ChartOptions() chart.Options {
	bull, _ := utf8.DecodeRuneInString(c.Chart.BullishBody)
	bear, _ := utf8.DecodeRuneInString(c.Chart.BearishBody)
	wick, _ := utf8.DecodeRuneInString(c.Chart.Wick)
	return chart.Options{
		Buffer:        c.Chart.Buffer,
		Stride:        c.Chart.Stride,
		LeftMargin:    c.Chart.LeftMargin,
		Baseline:      c.Chart.Baseline,
		Separation:    c.Chart.Separation,
		InitialHeight: c.Chart.InitialHeight,
		BullishBody:   bull,
		BearishBody:   bear,
		Wick:          wick,
	}
}

// OverlayOptions converts the config into overlay.Options.
func (c *Config) OverlayOptions() overlay.Options {
	return overlay.Options{Color: c.Overlay.Color, Ticks: c.Overlay.Ticks}
}
