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

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	amount  float64
	bracket string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "estimate tax on annual dividend income" }
func (*dividendsCmd) Usage() string {
	return `finboard dividends -amount <dollars> [-bracket <low|medium|high>]

  Estimates the tax on a year of dividend income, split between qualified
  and non-qualified portions.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Annual dividend income in dollars")
	f.StringVar(&c.bracket, "bracket", string(finboard.MediumBracket), "Income bracket (low, medium, high)")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bracket := finboard.Bracket(c.bracket)
	r, err := finboard.DividendTax(finboard.USD(c.amount), bracket, finboard.DefaultRates())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error estimating dividend tax: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DividendMarkdown(bracket, r))
	return subcommands.ExitSuccess
}
