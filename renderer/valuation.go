// Package renderer turns computed results into markdown reports ready for
// terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/mjoubert/finboard"
)

// ValuationMarkdown renders a portfolio valuation as a markdown report.
func ValuationMarkdown(v *finboard.Valuation) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Portfolio Valuation\n\n")
	if v.Failed() {
		fmt.Fprintf(&b, "> ⚠️ Quote source unavailable: %s\n\n", v.Err)
		fmt.Fprint(&b, "All values are reported as zero until quotes can be fetched again.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total Value: **%s**\n\n", v.TotalValue)

	fmt.Fprintln(&b, "| Asset | Category | Quantity | Unit Price | Value | Day Change | Allocation |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, item := range v.LineItems {
		name := item.Name
		if name == "" {
			name = item.Ticker
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			name,
			item.Category,
			item.Quantity,
			item.UnitPrice,
			item.Value,
			item.ChangePercent.SignedString(),
			item.AllocationPercent,
		)
	}

	return b.String()
}
