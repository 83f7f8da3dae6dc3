package quote

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mjoubert/finboard"
	"github.com/shopspring/decimal"
)

func addTwoDays(m *Memory, ticker string, prev, last float64) {
	m.Add(ticker, finboard.Candle{
		Date: finboard.NewDate(2025, time.June, 2),
		Open: decimal.NewFromFloat(prev), Close: decimal.NewFromFloat(prev),
	})
	m.Add(ticker, finboard.Candle{
		Date: finboard.NewDate(2025, time.June, 3),
		Open: decimal.NewFromFloat(prev), Close: decimal.NewFromFloat(last),
		Volume: 1000,
	})
}

func TestMarketSummary(t *testing.T) {
	m := NewMemory()
	addTwoDays(m, "^GSPC", 5000, 5050)
	addTwoDays(m, "^IXIC", 16000, 15840)
	// ^DJI intentionally missing.

	got := MarketSummary(m)
	if len(got) != 3 {
		t.Fatalf("len(summary) = %d, want 3", len(got))
	}
	if !got[0].Change.Equal(1) {
		t.Errorf("S&P change = %s, want 1%%", got[0].Change)
	}
	if !got[1].Change.Equal(-1) {
		t.Errorf("Nasdaq change = %s, want -1%%", got[1].Change)
	}
	// The missing index degrades to a zero entry instead of failing the call.
	if got[2].Name != "Dow Jones" || !got[2].Change.Equal(0) {
		t.Errorf("missing index entry = %+v, want zero-valued Dow Jones", got[2])
	}
}

func TestTrending(t *testing.T) {
	m := NewMemory()
	addTwoDays(m, "AAPL", 100, 103) // +3%
	addTwoDays(m, "MSFT", 100, 95)  // -5%
	addTwoDays(m, "NVDA", 100, 101) // +1%
	m.Names["MSFT"] = "Microsoft Corporation"

	got := Trending(m, 2)
	if len(got) != 2 {
		t.Fatalf("len(trending) = %d, want 2", len(got))
	}
	// Sorted by absolute change: MSFT (-5%) before AAPL (+3%), NVDA cut off.
	if got[0].Ticker != "MSFT" || got[1].Ticker != "AAPL" {
		t.Errorf("order = %s, %s; want MSFT, AAPL", got[0].Ticker, got[1].Ticker)
	}
	if got[0].Name != "Microsoft Corporation" {
		t.Errorf("name = %q, want the metadata display name", got[0].Name)
	}
	for i := 1; i < len(got); i++ {
		if math.Abs(float64(got[i].Change)) > math.Abs(float64(got[i-1].Change)) {
			t.Errorf("not sorted by absolute change: %s after %s", got[i].Change, got[i-1].Change)
		}
	}
}

func TestTrending_OutageSkipsAll(t *testing.T) {
	m := NewMemory()
	m.Err = finboard.ErrQuoteSourceUnavailable

	if got := Trending(m, 5); len(got) != 0 {
		t.Errorf("trending during outage = %+v, want empty", got)
	}
}

func TestMemory_OutageWrapsSentinel(t *testing.T) {
	m := NewMemory()
	m.Err = finboard.ErrQuoteSourceUnavailable

	_, err := m.History("AAPL", 2)
	if !errors.Is(err, finboard.ErrQuoteSourceUnavailable) {
		t.Errorf("History() error = %v, want ErrQuoteSourceUnavailable", err)
	}
}
