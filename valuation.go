package finboard

import (
	"errors"
	"log"
	"sort"

	"github.com/shopspring/decimal"
)

// quoteWindow is how many daily candles the valuation asks a provider for.
// Two days are enough for the previous-close change rule.
const quoteWindow = 2

// LineItem is one row of a Valuation.
type LineItem struct {
	Ticker            string   `json:"ticker"`
	Name              string   `json:"name"`
	Quantity          Quantity `json:"quantity"`
	UnitPrice         Money    `json:"unit_price"`
	Value             Money    `json:"value"`
	ChangePercent     Percent  `json:"change_percent"`
	AllocationPercent Percent  `json:"allocation_percent"`
	Category          Category `json:"category"`
}

// Valuation is the computed current worth and allocation breakdown of a
// portfolio. It is a derived record: the input portfolio is never mutated.
//
// When the quote source is entirely unreachable, TotalValue is zero,
// LineItems is empty and Err carries the reason; the caller decides the
// user-facing messaging. A single unknown ticker never fails the whole
// valuation, the item is simply omitted.
type Valuation struct {
	TotalValue Money      `json:"total_value"`
	LineItems  []LineItem `json:"line_items"`
	Err        error      `json:"-"`
}

// Failed reports whether the valuation is a zero-valued placeholder caused
// by a global quote-source failure.
func (v *Valuation) Failed() bool { return v.Err != nil }

func (v Valuation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("total_value", v.TotalValue)
	w.Append("line_items", v.LineItems)
	if v.Err != nil {
		w.Append("error", v.Err.Error())
	}
	return w.MarshalJSON()
}

// ValuePortfolio prices every position in the portfolio against the quote
// source and returns the resulting Valuation.
//
//   - equities: value = current price * quantity, daily change per the
//     previous-close rule (same-day open as fallback). Tickers the source
//     does not know are skipped and logged, not fatal.
//   - fixed income: value = face value * quantity, change pinned at zero
//     (price volatility of bonds intentionally not modeled).
//   - cash: included as a line item only when positive.
//
// Allocation percentages sum to 100 when the total is positive, and are all
// zero when the portfolio values to zero. A quote-source outage yields a
// zero Valuation with Err set, never a panic or a raised failure.
//
// The only returned error is *InvalidInputError, for malformed positions
// such as a negative quantity.
func ValuePortfolio(p Portfolio, src QuoteProvider) (*Valuation, error) {
	currency := p.Cash.Currency()
	if currency == "" {
		currency = "USD"
	}
	total := M(0, currency)
	items := make([]LineItem, 0, len(p.Equities)+len(p.FixedIncome)+1)

	// Equities, in a stable ticker order.
	for _, ticker := range sortedTickers(p.Equities) {
		h := p.Equities[ticker]
		if h.Quantity.IsNegative() {
			return nil, invalidInput("quantity", "negative quantity %s for %s", h.Quantity, ticker)
		}

		history, err := src.History(ticker, quoteWindow)
		if errors.Is(err, ErrQuoteSourceUnavailable) {
			return &Valuation{TotalValue: M(0, currency), LineItems: []LineItem{}, Err: err}, nil
		}
		if err != nil {
			// Recoverable per-item failure: skip the position, keep going.
			log.Printf("skipping %s: %v", ticker, err)
			continue
		}

		name := h.Name
		if meta, err := src.Metadata(ticker); err == nil && meta.DisplayName != "" {
			name = meta.DisplayName
		}
		quote, ok := NewQuote(ticker, name, history)
		if !ok {
			// Unknown ticker: the source returned no data.
			log.Printf("skipping %s: no quote data", ticker)
			continue
		}
		if quote.DisplayName == "" {
			quote.DisplayName = ticker
		}

		price := NewMoney(quote.CurrentPrice, currency)
		value := price.Mul(h.Quantity)
		items = append(items, LineItem{
			Ticker:        ticker,
			Name:          quote.DisplayName,
			Quantity:      h.Quantity,
			UnitPrice:     price,
			Value:         value,
			ChangePercent: quote.ChangePercent(),
			Category:      Equity,
		})
		total = total.Add(value)
	}

	// Fixed income.
	for _, id := range sortedTickers(p.FixedIncome) {
		h := p.FixedIncome[id]
		if h.Quantity.IsNegative() {
			return nil, invalidInput("quantity", "negative quantity %s for %s", h.Quantity, id)
		}
		name := h.Name
		if name == "" {
			name = id
		}
		value := h.FaceValue.Mul(h.Quantity)
		items = append(items, LineItem{
			Ticker:    id,
			Name:      name,
			Quantity:  h.Quantity,
			UnitPrice: h.FaceValue,
			Value:     value,
			Category:  FixedIncome,
		})
		total = total.Add(value)
	}

	// Cash.
	if p.Cash.IsPositive() {
		items = append(items, LineItem{
			Ticker:    "CASH",
			Name:      "Cash",
			Quantity:  Q(1),
			UnitPrice: p.Cash,
			Value:     p.Cash,
			Category:  Cash,
		})
		total = total.Add(p.Cash)
	}

	// Allocation percentages: value/total*100, or all zero on an empty total.
	if total.IsPositive() {
		hundred := decimal.NewFromInt(100)
		for i := range items {
			alloc := items[i].Value.Div(total).Mul(hundred)
			items[i].AllocationPercent = Percent(alloc.InexactFloat64())
		}
	}

	return &Valuation{TotalValue: total, LineItems: items}, nil
}

func sortedTickers(m map[string]Holding) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
