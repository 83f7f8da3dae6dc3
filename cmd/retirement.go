package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjoubert/finboard"
	"github.com/mjoubert/finboard/renderer"
	"github.com/shopspring/decimal"
)

// retirementCmd holds the flags for the 'retirement' subcommand.
type retirementCmd struct {
	contribution      float64
	years             int
	currentBracket    float64
	retirementBracket float64
}

func (*retirementCmd) Name() string     { return "retirement" }
func (*retirementCmd) Synopsis() string { return "compare retirement account types" }
func (*retirementCmd) Usage() string {
	return `finboard retirement -contribution <dollars> -years <n> [-bracket <rate>] [-retirement-bracket <rate>]

  Projects a yearly contribution stream at a 7% annual return and compares
  the net outcome of Traditional, Roth and Taxable accounts.
`
}

func (c *retirementCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.contribution, "contribution", 6000, "Annual contribution in dollars")
	f.IntVar(&c.years, "years", 20, "Years until retirement")
	f.Float64Var(&c.currentBracket, "bracket", 0.24, "Current marginal tax bracket, as a rate")
	f.Float64Var(&c.retirementBracket, "retirement-bracket", 0.22, "Expected bracket at retirement, as a rate")
}

func (c *retirementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	contribution := finboard.USD(c.contribution)
	current := decimal.NewFromFloat(c.currentBracket)
	retirement := decimal.NewFromFloat(c.retirementBracket)

	var results []*finboard.RetirementResult
	for _, account := range []finboard.AccountType{finboard.Traditional, finboard.Roth, finboard.Taxable} {
		r, err := finboard.RetirementBenefit(contribution, account, current, retirement, c.years)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error projecting %s account: %v\n", account, err)
			return subcommands.ExitFailure
		}
		results = append(results, r)
	}

	printMarkdown(renderer.RetirementMarkdown(results))
	return subcommands.ExitSuccess
}
