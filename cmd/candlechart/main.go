package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/yitech/candlechart/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "candlechart",
	Short: "Render synthetic candlestick charts as terminal text",
	Long: `candlechart draws OHLC-style candles as a block of terminal text.
Prices are synthetic relative units: each candle opens where the previous
one closed, so a chart is fully described by candle directions and sizes.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "yaml style config (built-in defaults when empty)")
}

// loadConfig returns the defaults unless --config names a file.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
