package quote

import (
	"fmt"

	"github.com/mjoubert/finboard"
)

// Memory is an in-memory QuoteProvider. It backs tests and offline demos,
// and doubles as a fault injector: a non-nil Err simulates a source-wide
// outage on every call.
type Memory struct {
	Candles map[string][]finboard.Candle
	Names   map[string]string
	Err     error
}

// NewMemory returns an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		Candles: make(map[string][]finboard.Candle),
		Names:   make(map[string]string),
	}
}

// Add appends a candle to a ticker's history. Candles must be added oldest
// first.
func (m *Memory) Add(ticker string, c finboard.Candle) *Memory {
	m.Candles[ticker] = append(m.Candles[ticker], c)
	return m
}

// History implements finboard.QuoteProvider.
func (m *Memory) History(ticker string, days int) ([]finboard.Candle, error) {
	if m.Err != nil {
		return nil, fmt.Errorf("memory provider: %w", m.Err)
	}
	h := m.Candles[ticker]
	if len(h) > days {
		h = h[len(h)-days:]
	}
	return h, nil
}

// Metadata implements finboard.QuoteProvider.
func (m *Memory) Metadata(ticker string) (finboard.Metadata, error) {
	if m.Err != nil {
		return finboard.Metadata{}, fmt.Errorf("memory provider: %w", m.Err)
	}
	return finboard.Metadata{DisplayName: m.Names[ticker]}, nil
}

var _ finboard.QuoteProvider = (*Memory)(nil)
