package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yitech/candlechart/chart"
	"github.com/yitech/candlechart/config"
	"github.com/yitech/candlechart/model/candle"
	"github.com/yitech/candlechart/overlay"
)

var (
	liveInterval time.Duration
	liveLimit    int
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Watch a chart grow from random candles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := tea.NewProgram(newLiveModel(cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

func init() {
	liveCmd.Flags().DurationVar(&liveInterval, "interval", time.Second, "time between candles")
	liveCmd.Flags().IntVar(&liveLimit, "limit", 20, "restart the chart after this many candles")
	rootCmd.AddCommand(liveCmd)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#aaaaaa"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

type tickMsg time.Time

type liveModel struct {
	cfg   *config.Config
	chart *chart.Chart
	rng   *rand.Rand
	width int
}

func newLiveModel(cfg *config.Config) liveModel {
	return liveModel{
		cfg:   cfg,
		chart: chart.New(cfg.ChartOptions()),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func tick() tea.Cmd {
	return tea.Tick(liveInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m liveModel) Init() tea.Cmd {
	return tick()
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tickMsg:
		// The session is append-only, so once it outgrows the cap we
		// start a fresh one rather than scrolling.
		if len(m.chart.Candles()) >= liveLimit {
			m.chart = chart.New(m.cfg.ChartOptions())
		}
		m.chart.Add(candle.Random(m.rng))
		return m, tick()
	}

	return m, nil
}

func (m liveModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(overlay.Legend(m.chart)))
	b.WriteByte('\n')
	b.WriteString(overlay.Render(m.chart, m.cfg.OverlayOptions()))
	b.WriteByte('\n')
	b.WriteString(footerStyle.Render("[q] quit"))
	return b.String()
}
