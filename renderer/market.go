package renderer

import (
	"fmt"
	"strings"

	"github.com/mjoubert/finboard/quote"
)

// MarketSummaryMarkdown renders the major-index header of the dashboard.
func MarketSummaryMarkdown(snapshots []quote.IndexSnapshot) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Market Summary\n\n")
	fmt.Fprintln(&b, "| Index | Level | Day Change |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, s := range snapshots {
		level := "n/a"
		if s.Quote.Ticker != "" {
			level = s.Quote.CurrentPrice.StringFixed(2)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", s.Name, level, s.Change.SignedString())
	}

	return b.String()
}

// TrendingMarkdown renders the most volatile watchlist tickers.
func TrendingMarkdown(movers []quote.Mover) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Trending Stocks\n\n")
	if len(movers) == 0 {
		fmt.Fprint(&b, "No market data available.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Name | Price | Day Change | Volume |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, m := range movers {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
			m.Ticker,
			m.Name,
			m.Quote.CurrentPrice.StringFixed(2),
			m.Change.SignedString(),
			m.Volume,
		)
	}

	return b.String()
}
