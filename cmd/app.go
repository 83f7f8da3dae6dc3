// Package cmd implements the CLI application of the finance dashboard.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mjoubert/finboard"
	"github.com/mjoubert/finboard/quote"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&valueCmd{},
	&gainsCmd{},
	&dividendsCmd{},
	&harvestCmd{},
	&retirementCmd{},
	&forecastCmd{},
	&summaryCmd{},
	&trendingCmd{},
	&quoteCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio", "portfolio.json", "Path to the portfolio file (JSON format)")

// DecodePortfolio loads the portfolio from the app portfolio file. A missing
// file is an empty portfolio, not an error.
func DecodePortfolio() (finboard.Portfolio, error) {
	var p finboard.Portfolio
	data, err := os.ReadFile(*portfolioFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, portfolio file %q does not exist, using an empty portfolio instead", *portfolioFile)
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("could not read portfolio file %q: %w", *portfolioFile, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("could not decode portfolio file %q: %w", *portfolioFile, err)
	}
	return p, nil
}

// NewQuoteProvider builds the live quote source from the environment.
func NewQuoteProvider() (*quote.Client, error) {
	return quote.NewClientFromEnv()
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
