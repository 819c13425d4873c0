package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yitech/candlechart/chart"
	"github.com/yitech/candlechart/model/candle"
	"github.com/yitech/candlechart/overlay"
	"github.com/yitech/candlechart/server"
)

var (
	serveAddr     string
	serveInterval time.Duration
	serveLimit    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Broadcast rendered chart frames over websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		hub := server.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: serveAddr, Handler: mux}

		go func() {
			log.Printf("serve: listening on ws://%s/ws", serveAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("serve: %v", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		ch := chart.New(cfg.ChartOptions())
		ticker := time.NewTicker(serveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("serve: shutting down")
				hub.Close()
				return srv.Shutdown(context.Background())
			case <-ticker.C:
				if len(ch.Candles()) >= serveLimit {
					ch = chart.New(cfg.ChartOptions())
				}
				ch.Add(candle.Random(rng))
				// Frames go out plain; terminals on the far side may not
				// speak ANSI color.
				hub.Broadcast(overlay.Render(ch, overlay.Options{Ticks: true}))
			}
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8480", "listen address")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", time.Second, "time between candles")
	serveCmd.Flags().IntVar(&serveLimit, "limit", 20, "restart the chart after this many candles")
	rootCmd.AddCommand(serveCmd)
}
