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

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	ticker     string
	horizon    int
	paths      int
	confidence float64
	history    int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "Monte Carlo price forecast for a ticker" }
func (*forecastCmd) Usage() string {
	return `finboard forecast -t <ticker> [-days <n>] [-paths <n>] [-confidence <p>]

  Simulates future prices with a geometric random walk calibrated on the
  ticker's historical daily returns, and prints the expected path with
  confidence bands.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to forecast")
	f.IntVar(&c.horizon, "days", 30, "Forecast horizon in business days")
	f.IntVar(&c.paths, "paths", finboard.DefaultForecastPaths, "Number of simulated paths")
	f.Float64Var(&c.confidence, "confidence", finboard.DefaultForecastConfidence, "Confidence level of the bands, in (0,1)")
	f.IntVar(&c.history, "history", 180, "Days of history used for calibration")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "-t flag is required")
		return subcommands.ExitUsageError
	}

	src, err := NewQuoteProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quote source: %v\n", err)
		return subcommands.ExitFailure
	}

	history, err := src.History(c.ticker, c.history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history for %q: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}

	r, err := finboard.Forecast(c.ticker, history, c.horizon, c.paths, c.confidence, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error forecasting %q: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForecastMarkdown(r))
	return subcommands.ExitSuccess
}
