package finboard

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bracket is a coarse income bracket used by the simplified rate tables.
type Bracket string

const (
	LowBracket    Bracket = "low"
	MediumBracket Bracket = "medium"
	HighBracket   Bracket = "high"
)

// LongTermDays is the holding period, in days, from which a gain is
// long-term. Exactly 365 days qualifies.
const LongTermDays = 365

// HarvestMinLoss is the minimum unrealized loss, in currency major units,
// for a position to be worth harvesting. The comparison is strict: a loss of
// exactly this amount does not qualify.
var HarvestMinLoss = decimal.NewFromInt(100)

// RateTable is the rate-lookup policy of the tax engine. The rates are
// illustrative constants, not real tax law; keeping them in an explicit
// table means correctness can be improved without touching engine logic.
type RateTable struct {
	ShortTerm decimal.Decimal // short-term capital gains, flat
	LongTerm  decimal.Decimal // long-term capital gains, flat

	Qualified map[Bracket]decimal.Decimal // qualified dividends, preferential
	Ordinary  map[Bracket]decimal.Decimal // non-qualified dividends, ordinary income

	QualifiedShare decimal.Decimal // share of dividends assumed qualified
	HarvestRate    decimal.Decimal // assumed marginal rate on harvested losses
}

// DefaultRates returns the standard simplified table: 24% short-term, 15%
// long-term, a 70% qualified-dividend split, and the usual three-bracket
// dividend rates.
func DefaultRates() RateTable {
	return RateTable{
		ShortTerm: decimal.NewFromFloat(0.24),
		LongTerm:  decimal.NewFromFloat(0.15),
		Qualified: map[Bracket]decimal.Decimal{
			LowBracket:    decimal.Zero,
			MediumBracket: decimal.NewFromFloat(0.15),
			HighBracket:   decimal.NewFromFloat(0.20),
		},
		Ordinary: map[Bracket]decimal.Decimal{
			LowBracket:    decimal.NewFromFloat(0.10),
			MediumBracket: decimal.NewFromFloat(0.22),
			HighBracket:   decimal.NewFromFloat(0.35),
		},
		QualifiedShare: decimal.NewFromFloat(0.7),
		HarvestRate:    decimal.NewFromFloat(0.24),
	}
}

// qualifiedRate looks up the preferential rate for a bracket, falling back
// to the medium rate for unknown brackets.
func (t RateTable) qualifiedRate(b Bracket) decimal.Decimal {
	if r, ok := t.Qualified[b]; ok {
		return r
	}
	return t.Qualified[MediumBracket]
}

func (t RateTable) ordinaryRate(b Bracket) decimal.Decimal {
	if r, ok := t.Ordinary[b]; ok {
		return r
	}
	return t.Ordinary[MediumBracket]
}

// CapitalGainsResult is the outcome of a single capital-gains estimate.
type CapitalGainsResult struct {
	InitialInvestment Money   `json:"initial_investment"`
	CurrentValue      Money   `json:"current_value"`
	GainLoss          Money   `json:"gain_loss"`
	IsLongTerm        bool    `json:"is_long_term"`
	TaxRate           Percent `json:"tax_rate"`
	EstimatedTax      Money   `json:"estimated_tax"`
	NetAfterTax       Money   `json:"net_after_tax"`
}

// CapitalGains estimates the tax on selling a position today.
//
// A holding of LongTermDays days or more is long-term. Losses never produce
// a negative tax, and a loss leaves the current value untouched.
func CapitalGains(purchasePrice, currentPrice Money, quantity Quantity, holdingDays int, rates RateTable) (*CapitalGainsResult, error) {
	if quantity.IsNegative() {
		return nil, invalidInput("quantity", "negative quantity %s", quantity)
	}
	if purchasePrice.IsNegative() || currentPrice.IsNegative() {
		return nil, invalidInput("price", "negative price")
	}

	initial := purchasePrice.Mul(quantity)
	current := currentPrice.Mul(quantity)
	gainLoss := current.Sub(initial)

	isLongTerm := holdingDays >= LongTermDays
	rate := rates.ShortTerm
	if isLongTerm {
		rate = rates.LongTerm
	}

	// Losses never produce negative tax.
	tax := gainLoss.Scale(rate)
	if tax.IsNegative() {
		tax = M(0, tax.Currency())
	}

	net := current
	if gainLoss.IsPositive() {
		net = current.Sub(tax)
	}

	return &CapitalGainsResult{
		InitialInvestment: initial,
		CurrentValue:      current,
		GainLoss:          gainLoss,
		IsLongTerm:        isLongTerm,
		TaxRate:           Percent(rate.Mul(decimal.NewFromInt(100)).InexactFloat64()),
		EstimatedTax:      tax,
		NetAfterTax:       net,
	}, nil
}

// DividendTaxResult is the outcome of a dividend-tax estimate.
type DividendTaxResult struct {
	AnnualDividends       Money   `json:"annual_dividends"`
	QualifiedDividends    Money   `json:"qualified_dividends"`
	NonQualifiedDividends Money   `json:"non_qualified_dividends"`
	QualifiedTax          Money   `json:"qualified_tax"`
	NonQualifiedTax       Money   `json:"non_qualified_tax"`
	TotalTax              Money   `json:"total_tax"`
	EffectiveRate         Percent `json:"effective_rate"`
	NetDividends          Money   `json:"net_dividends"`
}

// DividendTax estimates the tax on annual dividend income.
//
// Dividends are split into a qualified and a non-qualified portion by the
// table's QualifiedShare (70% by default, a fixed assumption). Unknown
// brackets fall back to the medium rates. The effective rate is zero when
// there are no dividends.
func DividendTax(annualDividends Money, bracket Bracket, rates RateTable) (*DividendTaxResult, error) {
	if annualDividends.IsNegative() {
		return nil, invalidInput("annual_dividends", "negative dividends %s", annualDividends)
	}

	one := decimal.NewFromInt(1)
	qualified := annualDividends.Scale(rates.QualifiedShare)
	nonQualified := annualDividends.Scale(one.Sub(rates.QualifiedShare))

	qualifiedTax := qualified.Scale(rates.qualifiedRate(bracket))
	nonQualifiedTax := nonQualified.Scale(rates.ordinaryRate(bracket))
	totalTax := qualifiedTax.Add(nonQualifiedTax)

	var effective Percent
	if annualDividends.IsPositive() {
		effective = Percent(totalTax.Div(annualDividends).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}

	return &DividendTaxResult{
		AnnualDividends:       annualDividends,
		QualifiedDividends:    qualified,
		NonQualifiedDividends: nonQualified,
		QualifiedTax:          qualifiedTax,
		NonQualifiedTax:       nonQualifiedTax,
		TotalTax:              totalTax,
		EffectiveRate:         effective,
		NetDividends:          annualDividends.Sub(totalTax),
	}, nil
}

// HarvestOpportunity is one tax-loss-harvesting candidate.
type HarvestOpportunity struct {
	Ticker         string   `json:"ticker"`
	PurchasePrice  Money    `json:"purchase_price"`
	CurrentPrice   Money    `json:"current_price"`
	Quantity       Quantity `json:"quantity"`
	UnrealizedLoss Money    `json:"unrealized_loss"`
	TaxBenefit     Money    `json:"tax_benefit_estimate"`
}

// HarvestOpportunities scans the portfolio's equity positions for harvesting
// candidates, sorted by descending estimated benefit.
//
// Only holdings carrying both a purchase and a current price are considered;
// positions without cost-basis data are skipped. A position qualifies when
// its unrealized loss is strictly below -HarvestMinLoss.
func HarvestOpportunities(p Portfolio, rates RateTable) []HarvestOpportunity {
	opportunities := make([]HarvestOpportunity, 0)

	for _, ticker := range sortedTickers(p.Equities) {
		h := p.Equities[ticker]
		if h.PurchasePrice.IsZero() || h.CurrentPrice.IsZero() {
			// No cost basis, nothing to harvest against.
			continue
		}
		loss := h.CurrentPrice.Sub(h.PurchasePrice).Mul(h.Quantity)
		if loss.Amount().GreaterThanOrEqual(HarvestMinLoss.Neg()) {
			continue
		}
		opportunities = append(opportunities, HarvestOpportunity{
			Ticker:         ticker,
			PurchasePrice:  h.PurchasePrice,
			CurrentPrice:   h.CurrentPrice,
			Quantity:       h.Quantity,
			UnrealizedLoss: loss,
			TaxBenefit:     loss.Abs().Scale(rates.HarvestRate),
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].TaxBenefit.GreaterThan(opportunities[j].TaxBenefit)
	})
	return opportunities
}
