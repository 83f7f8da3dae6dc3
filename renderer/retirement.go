package renderer

import (
	"fmt"
	"strings"

	"github.com/mjoubert/finboard"
)

// RetirementMarkdown renders one or more retirement account comparisons
// side by side, one column per account type.
func RetirementMarkdown(results []*finboard.RetirementResult) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Retirement Account Comparison\n\n")
	if len(results) == 0 {
		return b.String()
	}

	first := results[0]
	fmt.Fprintf(&b, "Contributing %s per year for %d years.\n\n", first.AnnualContribution, first.Years)

	fmt.Fprint(&b, "| |")
	for _, r := range results {
		fmt.Fprintf(&b, " %s |", r.AccountType)
	}
	fmt.Fprint(&b, "\n|:---|")
	for range results {
		fmt.Fprint(&b, "---:|")
	}
	fmt.Fprintln(&b)

	row := func(label string, cell func(*finboard.RetirementResult) string) {
		fmt.Fprintf(&b, "| %s |", label)
		for _, r := range results {
			fmt.Fprintf(&b, " %s |", cell(r))
		}
		fmt.Fprintln(&b)
	}
	row("Gross Future Value", func(r *finboard.RetirementResult) string { return r.GrossFutureValue.String() })
	row("Current Tax Savings", func(r *finboard.RetirementResult) string { return r.CurrentTaxSavings.String() })
	row("Taxes at Withdrawal", func(r *finboard.RetirementResult) string { return r.TaxesAtWithdrawal.String() })
	row("**Net Value**", func(r *finboard.RetirementResult) string { return "**" + r.NetValue.String() + "**" })

	return b.String()
}
