package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjoubert/finboard"
	"github.com/mjoubert/finboard/renderer"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	ticker string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "estimate capital-gains tax on a position" }
func (*gainsCmd) Usage() string {
	return `finboard gains -t <ticker>

  Estimates the tax due on selling an equity position today, using its
  recorded cost basis and holding period.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the equity position to estimate")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "-t flag is required")
		return subcommands.ExitUsageError
	}

	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	h, ok := p.Equities[c.ticker]
	if !ok {
		fmt.Fprintf(os.Stderr, "No equity position %q in the portfolio\n", c.ticker)
		return subcommands.ExitFailure
	}

	current := h.CurrentPrice
	if current.IsZero() {
		src, err := NewQuoteProvider()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating quote source: %v\n", err)
			return subcommands.ExitFailure
		}
		q, err := src.Latest(c.ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching current price for %q: %v\n", c.ticker, err)
			return subcommands.ExitFailure
		}
		current = finboard.NewMoney(q.CurrentPrice, "USD")
	}

	r, err := finboard.CapitalGains(h.PurchasePrice, current, h.Quantity, h.HoldingDays, finboard.DefaultRates())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error estimating gains: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CapitalGainsMarkdown(c.ticker, r))
	return subcommands.ExitSuccess
}
