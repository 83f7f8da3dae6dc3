package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjoubert/finboard"
	"github.com/mjoubert/finboard/renderer"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	asJSON bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value the portfolio against live quotes" }
func (*valueCmd) Usage() string {
	return `finboard value [-json]

  Prices every position of the portfolio and displays values, daily changes
  and allocation percentages.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw valuation as JSON instead of a report")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	src, err := NewQuoteProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quote source: %v\n", err)
		return subcommands.ExitFailure
	}

	v, err := finboard.ValuePortfolio(p, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding valuation: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ValuationMarkdown(v))
	return subcommands.ExitSuccess
}
