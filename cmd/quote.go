package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "latest price of a ticker" }
func (*quoteCmd) Usage() string {
	return `finboard quote <ticker>...

  Displays the latest known price and daily change of each ticker, using
  intraday data when available.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one ticker is required")
		return subcommands.ExitUsageError
	}

	src, err := NewQuoteProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quote source: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		q, err := src.Latest(ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		name := q.DisplayName
		if name == "" {
			name = q.Ticker
		}
		fmt.Printf("%s (%s): %s on %s (%s)\n", name, q.Ticker, q.CurrentPrice.StringFixed(2), q.AsOf, q.ChangePercent().SignedString())
	}
	return status
}
