package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjoubert/finboard/quote"
	"github.com/mjoubert/finboard/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "current level and change of the major indices" }
func (*summaryCmd) Usage() string {
	return `finboard summary

  Displays the current level and daily change of the S&P 500, Nasdaq and
  Dow Jones.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, err := NewQuoteProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quote source: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MarketSummaryMarkdown(quote.MarketSummary(src)))
	return subcommands.ExitSuccess
}
