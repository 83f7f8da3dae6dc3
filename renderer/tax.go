package renderer

import (
	"fmt"
	"strings"

	"github.com/mjoubert/finboard"
)

// CapitalGainsMarkdown renders a single-position capital-gains estimate.
func CapitalGainsMarkdown(ticker string, r *finboard.CapitalGainsResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Estimate for %s\n\n", ticker)

	term := "Short-term"
	if r.IsLongTerm {
		term = "Long-term"
	}
	fmt.Fprintf(&b, "Holding period: %s (taxed at %s)\n\n", term, r.TaxRate)

	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Initial Investment | %s |\n", r.InitialInvestment)
	fmt.Fprintf(&b, "| Current Value | %s |\n", r.CurrentValue)
	fmt.Fprintf(&b, "| Gain / Loss | %s |\n", r.GainLoss.SignedString())
	fmt.Fprintf(&b, "| Estimated Tax | %s |\n", r.EstimatedTax)
	fmt.Fprintf(&b, "| **Net After Tax** | **%s** |\n", r.NetAfterTax)

	return b.String()
}

// DividendMarkdown renders a dividend-tax estimate.
func DividendMarkdown(bracket finboard.Bracket, r *finboard.DividendTaxResult) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Dividend Tax Estimate\n\n")
	fmt.Fprintf(&b, "Income bracket: %s\n\n", bracket)

	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Annual Dividends | %s |\n", r.AnnualDividends)
	fmt.Fprintf(&b, "| Qualified Portion | %s |\n", r.QualifiedDividends)
	fmt.Fprintf(&b, "| Non-Qualified Portion | %s |\n", r.NonQualifiedDividends)
	fmt.Fprintf(&b, "| Tax on Qualified | %s |\n", r.QualifiedTax)
	fmt.Fprintf(&b, "| Tax on Non-Qualified | %s |\n", r.NonQualifiedTax)
	fmt.Fprintf(&b, "| **Total Tax** | **%s** |\n", r.TotalTax)
	fmt.Fprintf(&b, "| **Net Dividends** | **%s** |\n", r.NetDividends)
	fmt.Fprintf(&b, "\nEffective rate: %s\n", r.EffectiveRate)

	return b.String()
}

// HarvestMarkdown renders the tax-loss-harvesting candidates.
func HarvestMarkdown(opportunities []finboard.HarvestOpportunity) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Tax-Loss Harvesting Opportunities\n\n")
	if len(opportunities) == 0 {
		fmt.Fprint(&b, "No positions currently qualify for tax-loss harvesting.\n")
		return b.String()
	}

	fmt.Fprintln(&b, "| Ticker | Purchase | Current | Quantity | Unrealized Loss | Est. Tax Benefit |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for _, o := range opportunities {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			o.Ticker,
			o.PurchasePrice,
			o.CurrentPrice,
			o.Quantity,
			o.UnrealizedLoss.SignedString(),
			o.TaxBenefit,
		)
	}

	return b.String()
}
