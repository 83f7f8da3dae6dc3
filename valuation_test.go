package finboard

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// stubProvider serves canned candles from memory, and can simulate a global
// outage via err.
type stubProvider struct {
	candles map[string][]Candle
	names   map[string]string
	err     error
}

func (s *stubProvider) History(ticker string, days int) ([]Candle, error) {
	if s.err != nil {
		return nil, fmt.Errorf("stub: %w", s.err)
	}
	h := s.candles[ticker]
	if len(h) > days {
		h = h[len(h)-days:]
	}
	return h, nil
}

func (s *stubProvider) Metadata(ticker string) (Metadata, error) {
	if name, ok := s.names[ticker]; ok {
		return Metadata{DisplayName: name}, nil
	}
	return Metadata{}, fmt.Errorf("no metadata for %s", ticker)
}

func day(d int) Date { return NewDate(2025, time.June, d) }

func candles(prices ...float64) []Candle {
	out := make([]Candle, len(prices))
	for i, p := range prices {
		out[i] = Candle{Date: day(2 + i), Open: newDecimal(p), Close: newDecimal(p)}
	}
	return out
}

func TestValuePortfolio(t *testing.T) {
	src := &stubProvider{
		candles: map[string][]Candle{"AAPL": candles(145, 150)},
		names:   map[string]string{"AAPL": "Apple Inc."},
	}
	p := Portfolio{
		Equities: map[string]Holding{"AAPL": {Ticker: "AAPL", Quantity: Q(10)}},
		Cash:     USD(500),
	}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	if !v.TotalValue.Equal(USD(2000)) {
		t.Errorf("TotalValue = %s, want %s", v.TotalValue, USD(2000))
	}
	if len(v.LineItems) != 2 {
		t.Fatalf("len(LineItems) = %d, want 2", len(v.LineItems))
	}

	aapl := v.LineItems[0]
	if !aapl.Value.Equal(USD(1500)) {
		t.Errorf("AAPL value = %s, want %s", aapl.Value, USD(1500))
	}
	if aapl.Name != "Apple Inc." {
		t.Errorf("AAPL name = %q, want %q", aapl.Name, "Apple Inc.")
	}
	if !aapl.ChangePercent.Equal(Percent(100 * 5.0 / 145)) {
		t.Errorf("AAPL change = %s, want %s", aapl.ChangePercent, Percent(100*5.0/145))
	}
	if !aapl.AllocationPercent.Equal(75) {
		t.Errorf("AAPL allocation = %s, want 75%%", aapl.AllocationPercent)
	}

	cash := v.LineItems[1]
	if cash.Category != Cash || !cash.AllocationPercent.Equal(25) {
		t.Errorf("cash item = %+v, want category %q allocation 25%%", cash, Cash)
	}
}

func TestValuePortfolio_AllocationsSumTo100(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{
		"AAPL": candles(145, 150),
		"MSFT": candles(300, 310),
	}}
	p := Portfolio{
		Equities: map[string]Holding{
			"AAPL": {Quantity: Q(3)},
			"MSFT": {Quantity: Q(7)},
		},
		FixedIncome: map[string]Holding{
			"T-BOND": {Name: "Treasury Bond", Quantity: Q(5), FaceValue: USD(1000)},
		},
		Cash: USD(123.45),
	}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	var sum Percent
	var total Money
	for _, item := range v.LineItems {
		sum += item.AllocationPercent
		total = total.Add(item.Value)
	}
	if !sum.Equal(100) {
		t.Errorf("sum of allocations = %s, want 100%%", sum)
	}
	if !total.Equal(v.TotalValue) {
		t.Errorf("sum of line item values = %s, want %s", total, v.TotalValue)
	}
}

func TestValuePortfolio_SkipsUnknownTicker(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{"AAPL": candles(145, 150)}}
	p := Portfolio{Equities: map[string]Holding{
		"AAPL":    {Quantity: Q(1)},
		"NOTHERE": {Quantity: Q(1)},
	}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	if len(v.LineItems) != 1 || v.LineItems[0].Ticker != "AAPL" {
		t.Errorf("LineItems = %+v, want only AAPL", v.LineItems)
	}
	if !v.TotalValue.Equal(USD(150)) {
		t.Errorf("TotalValue = %s, want %s", v.TotalValue, USD(150))
	}
}

func TestValuePortfolio_GlobalOutage(t *testing.T) {
	src := &stubProvider{err: ErrQuoteSourceUnavailable}
	p := Portfolio{Equities: map[string]Holding{"AAPL": {Quantity: Q(1)}}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v, want carried error instead", err)
	}
	if !v.Failed() {
		t.Fatal("Failed() = false, want true on global outage")
	}
	if !v.TotalValue.IsZero() || len(v.LineItems) != 0 {
		t.Errorf("outage valuation = %+v, want zero value and no items", v)
	}
	if !errors.Is(v.Err, ErrQuoteSourceUnavailable) {
		t.Errorf("Err = %v, want ErrQuoteSourceUnavailable", v.Err)
	}
}

func TestValuePortfolio_ZeroTotalZeroAllocations(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{"ZERO": candles(0, 0)}}
	p := Portfolio{Equities: map[string]Holding{"ZERO": {Quantity: Q(10)}}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	if !v.TotalValue.IsZero() {
		t.Fatalf("TotalValue = %s, want zero", v.TotalValue)
	}
	for _, item := range v.LineItems {
		if !item.AllocationPercent.Equal(0) {
			t.Errorf("allocation of %s = %s, want 0", item.Ticker, item.AllocationPercent)
		}
	}
}

func TestValuePortfolio_SingleDayUsesOpen(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{
		"IPO": {{Date: day(2), Open: newDecimal(100.0), Close: newDecimal(110.0)}},
	}}
	p := Portfolio{Equities: map[string]Holding{"IPO": {Quantity: Q(1)}}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	if got := v.LineItems[0].ChangePercent; !got.Equal(10) {
		t.Errorf("change = %s, want 10%% (open fallback)", got)
	}
}

func TestValuePortfolio_ZeroPreviousCloseUsesOpen(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{
		"HALT": {
			{Date: day(2), Open: newDecimal(0.0), Close: newDecimal(0.0)},
			{Date: day(3), Open: newDecimal(120.0), Close: newDecimal(150.0)},
		},
	}}
	p := Portfolio{Equities: map[string]Holding{"HALT": {Quantity: Q(1)}}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	if got := v.LineItems[0].ChangePercent; !got.Equal(25) {
		t.Errorf("change = %s, want 25%% (open fallback)", got)
	}
}

func TestValuePortfolio_ZeroReferencePriceReportsZeroChange(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{
		"ODD": {{Date: day(2), Open: newDecimal(0.0), Close: newDecimal(50.0)}},
	}}
	p := Portfolio{Equities: map[string]Holding{"ODD": {Quantity: Q(1)}}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	if got := v.LineItems[0].ChangePercent; !got.Equal(0) {
		t.Errorf("change = %s, want 0 on zero reference price", got)
	}
}

func TestValuePortfolio_NegativeQuantity(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{"AAPL": candles(145, 150)}}
	p := Portfolio{Equities: map[string]Holding{"AAPL": {Quantity: Q(-1)}}}

	_, err := ValuePortfolio(p, src)
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidInputError", err)
	}
}

func TestValuePortfolio_NoCashItemWhenZero(t *testing.T) {
	src := &stubProvider{candles: map[string][]Candle{"AAPL": candles(145, 150)}}
	p := Portfolio{Equities: map[string]Holding{"AAPL": {Quantity: Q(1)}}}

	v, err := ValuePortfolio(p, src)
	if err != nil {
		t.Fatalf("ValuePortfolio() error = %v", err)
	}
	for _, item := range v.LineItems {
		if item.Category == Cash {
			t.Errorf("found cash line item %+v for a cash-less portfolio", item)
		}
	}
}
