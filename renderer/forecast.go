package renderer

import (
	"fmt"
	"strings"

	"github.com/mjoubert/finboard"
)

// forecastMaxRows caps the table size; long horizons are thinned.
const forecastMaxRows = 15

// ForecastMarkdown renders a Monte Carlo price forecast as a table of
// sampled steps plus the final projection.
func ForecastMarkdown(r *finboard.ForecastResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Price Forecast for %s\n\n", r.Ticker)
	fmt.Fprintf(&b, "Last observed price: %.2f\n\n", r.LastPrice)

	n := len(r.Dates)
	if n == 0 {
		return b.String()
	}

	step := 1
	if n > forecastMaxRows {
		step = (n + forecastMaxRows - 1) / forecastMaxRows
	}

	fmt.Fprintln(&b, "| Date | Lower Band | Expected | Upper Band |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for i := 0; i < n; i += step {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f |\n",
			r.Dates[i], r.LowerBand[i], r.MeanPath[i], r.UpperBand[i])
	}
	if (n-1)%step != 0 {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.2f |\n",
			r.Dates[n-1], r.LowerBand[n-1], r.MeanPath[n-1], r.UpperBand[n-1])
	}

	last := n - 1
	change := (r.MeanPath[last]/r.LastPrice - 1) * 100
	fmt.Fprintf(&b, "\nExpected price on %s: **%.2f** (%+.2f%%)\n", r.Dates[last], r.MeanPath[last], change)

	return b.String()
}
