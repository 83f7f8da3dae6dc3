package quote

import (
	"log"
	"math"
	"sort"

	"github.com/mjoubert/finboard"
)

// The major indices of the market summary.
var indices = []struct {
	Name   string
	Ticker string
}{
	{"S&P 500", "^GSPC"},
	{"Nasdaq", "^IXIC"},
	{"Dow Jones", "^DJI"},
}

// watchlist is the fixed set of popular tickers scanned for trending moves.
var watchlist = []string{
	"AAPL", "MSFT", "AMZN", "GOOGL", "META",
	"TSLA", "NVDA", "JPM", "V", "PG",
	"DIS", "NFLX", "PYPL", "INTC", "AMD",
}

// IndexSnapshot is the state of one market index.
type IndexSnapshot struct {
	Name   string           `json:"name"`
	Ticker string           `json:"ticker"`
	Quote  finboard.Quote   `json:"quote"`
	Change finboard.Percent `json:"change_percent"`
}

// MarketSummary reports the current level and daily change of the major
// indices. An index whose data cannot be fetched degrades to a zero entry so
// one bad feed never blanks the whole dashboard header.
func MarketSummary(src finboard.QuoteProvider) []IndexSnapshot {
	out := make([]IndexSnapshot, 0, len(indices))
	for _, idx := range indices {
		snap := IndexSnapshot{Name: idx.Name, Ticker: idx.Ticker}
		history, err := src.History(idx.Ticker, 2)
		if err != nil {
			log.Printf("market summary: %s: %v", idx.Ticker, err)
			out = append(out, snap)
			continue
		}
		q, ok := finboard.NewQuote(idx.Ticker, idx.Name, history)
		if !ok {
			log.Printf("market summary: %s: no data", idx.Ticker)
			out = append(out, snap)
			continue
		}
		snap.Quote = q
		snap.Change = q.ChangePercent()
		out = append(out, snap)
	}
	return out
}

// Mover is one trending entry: a watchlist ticker with its daily move.
type Mover struct {
	Ticker string           `json:"ticker"`
	Name   string           `json:"name"`
	Quote  finboard.Quote   `json:"quote"`
	Change finboard.Percent `json:"change_percent"`
	Volume int64            `json:"volume"`
}

// Trending scans the watchlist and returns the `count` tickers with the
// largest absolute daily change, most volatile first. Tickers without data
// are skipped.
func Trending(src finboard.QuoteProvider, count int) []Mover {
	movers := make([]Mover, 0, len(watchlist))
	for _, ticker := range watchlist {
		history, err := src.History(ticker, 2)
		if err != nil {
			log.Printf("trending: skipping %s: %v", ticker, err)
			continue
		}
		name := ticker
		if meta, err := src.Metadata(ticker); err == nil && meta.DisplayName != "" {
			name = meta.DisplayName
		}
		q, ok := finboard.NewQuote(ticker, name, history)
		if !ok {
			continue
		}
		var volume int64
		if len(history) > 0 {
			volume = history[len(history)-1].Volume
		}
		movers = append(movers, Mover{
			Ticker: ticker,
			Name:   name,
			Quote:  q,
			Change: q.ChangePercent(),
			Volume: volume,
		})
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return math.Abs(float64(movers[i].Change)) > math.Abs(float64(movers[j].Change))
	})
	if len(movers) > count {
		movers = movers[:count]
	}
	return movers
}
