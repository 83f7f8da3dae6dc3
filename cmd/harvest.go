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

type harvestCmd struct{}

func (*harvestCmd) Name() string     { return "harvest" }
func (*harvestCmd) Synopsis() string { return "find tax-loss-harvesting candidates" }
func (*harvestCmd) Usage() string {
	return `finboard harvest

  Scans the portfolio's equity positions for unrealized losses worth
  harvesting, largest estimated benefit first.
`
}

func (c *harvestCmd) SetFlags(f *flag.FlagSet) {}

func (c *harvestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	opportunities := finboard.HarvestOpportunities(p, finboard.DefaultRates())
	printMarkdown(renderer.HarvestMarkdown(opportunities))
	return subcommands.ExitSuccess
}
