package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/yitech/candlechart/chart"
	"github.com/yitech/candlechart/config"
	"github.com/yitech/candlechart/model/candle"
	"github.com/yitech/candlechart/overlay"
)

var (
	renderCount int
	renderSeed  int64
	candlesPath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a chart once and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ch := chart.New(cfg.ChartOptions())
		if candlesPath != "" {
			cs, err := config.LoadCandles(candlesPath)
			if err != nil {
				return err
			}
			if len(cs) == 0 {
				return fmt.Errorf("%s contains no candles", candlesPath)
			}
			for _, c := range cs {
				ch.Add(c)
			}
		} else {
			rng := rand.New(rand.NewSource(renderSeed))
			for i := 0; i < renderCount; i++ {
				ch.Add(candle.Random(rng))
			}
		}

		fmt.Println(overlay.Render(ch, cfg.OverlayOptions()))
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVarP(&renderCount, "count", "n", 12, "number of random candles")
	renderCmd.Flags().Int64Var(&renderSeed, "seed", 42, "seed for the random candles")
	renderCmd.Flags().StringVar(&candlesPath, "candles", "", "yaml candle list instead of random data")
	rootCmd.AddCommand(renderCmd)
}
