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

// trendingCmd holds the flags for the 'trending' subcommand.
type trendingCmd struct {
	count int
}

func (*trendingCmd) Name() string     { return "trending" }
func (*trendingCmd) Synopsis() string { return "today's most volatile watchlist stocks" }
func (*trendingCmd) Usage() string {
	return `finboard trending [-n <count>]

  Scans a fixed watchlist of popular tickers and displays the ones with the
  largest absolute daily change.
`
}

func (c *trendingCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 5, "Number of stocks to display")
}

func (c *trendingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, err := NewQuoteProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quote source: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TrendingMarkdown(quote.Trending(src, c.count)))
	return subcommands.ExitSuccess
}
