package finboard

import "github.com/shopspring/decimal"

// Category classifies a portfolio line item.
type Category string

const (
	Equity      Category = "equity"
	FixedIncome Category = "fixed_income"
	Cash        Category = "cash"
)

// Holding is one portfolio position.
//
// An equity holding references a live quote by ticker; a fixed-income holding
// carries its face value directly. PurchasePrice, CurrentPrice and
// HoldingDays are cost-basis data: they are optional and only consumed by the
// tax engine, which skips holdings that do not carry them.
type Holding struct {
	Ticker   string   `json:"ticker"`
	Name     string   `json:"name,omitempty"`
	Quantity Quantity `json:"quantity"`

	// Fixed income only.
	FaceValue Money `json:"face_value,omitempty"`

	// Cost basis, optional.
	PurchasePrice Money `json:"purchase_price,omitempty"`
	CurrentPrice  Money `json:"current_price,omitempty"`
	HoldingDays   int   `json:"holding_period_days,omitempty"`
}

// Portfolio is a caller-owned snapshot of positions. The engine receives it
// by value and never mutates it; every computation returns a new derived
// record.
type Portfolio struct {
	Equities    map[string]Holding `json:"equities,omitempty"`
	FixedIncome map[string]Holding `json:"fixed_income,omitempty"`
	Cash        Money              `json:"cash,omitempty"`
}

// Candle is one day of market history for a ticker.
type Candle struct {
	Date   Date            `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// Metadata is the descriptive information a quote source knows about a ticker.
type Metadata struct {
	DisplayName string `json:"display_name"`
}

// QuoteProvider is the engine's only window on market data.
//
// History returns up to `days` daily candles for a ticker, oldest first. An
// unknown ticker yields an empty slice and a nil error: the engine treats
// that as "skip, do not fail". A transport-level failure is reported as an
// error wrapping ErrQuoteSourceUnavailable.
type QuoteProvider interface {
	History(ticker string, days int) ([]Candle, error)
	Metadata(ticker string) (Metadata, error)
}

// Quote is the last known price of a ticker together with the reference
// price used to report a daily change.
type Quote struct {
	Ticker        string          `json:"ticker"`
	DisplayName   string          `json:"display_name,omitempty"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PreviousPrice decimal.Decimal `json:"previous_price"`
	AsOf          Date            `json:"as_of"`
}

// NewQuote derives a Quote from a daily history, oldest first.
//
// The reference price is the previous day's close. When there is no previous
// close, or it is zero, it falls back to the last day's open. It returns false
// when the history is empty.
func NewQuote(ticker, name string, history []Candle) (Quote, bool) {
	if len(history) == 0 {
		return Quote{}, false
	}
	last := history[len(history)-1]
	q := Quote{
		Ticker:       ticker,
		DisplayName:  name,
		CurrentPrice: last.Close,
		AsOf:         last.Date,
	}
	q.PreviousPrice = last.Open
	if len(history) >= 2 {
		if prev := history[len(history)-2].Close; !prev.IsZero() {
			q.PreviousPrice = prev
		}
	}
	return q, true
}

// ChangePercent returns the percent change from the reference price to the
// current price. A zero reference price reports a zero change rather than a
// division error.
func (q Quote) ChangePercent() Percent {
	if q.PreviousPrice.IsZero() {
		return 0
	}
	change := q.CurrentPrice.Sub(q.PreviousPrice).Div(q.PreviousPrice).Mul(decimal.NewFromInt(100))
	return Percent(change.InexactFloat64())
}
