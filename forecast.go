package finboard

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Defaults of the Monte Carlo forecast.
const (
	DefaultForecastPaths      = 100
	DefaultForecastConfidence = 0.90
)

// ForecastResult is the aggregated outcome of a Monte Carlo price
// simulation: all sequences have length equal to the forecast horizon.
type ForecastResult struct {
	Ticker    string    `json:"ticker"`
	LastPrice float64   `json:"last_price"`
	Dates     []Date    `json:"dates"`
	MeanPath  []float64 `json:"mean_path"`
	UpperBand []float64 `json:"upper_band"`
	LowerBand []float64 `json:"lower_band"`
}

// Forecast simulates future price paths for a ticker with a geometric random
// walk calibrated on the historical daily log returns of `history` (oldest
// first, at least two observations, otherwise ErrInsufficientData).
//
// Each of `paths` trajectories starts at the last observed close and
// multiplies the prior price by exp(X) at every step, X drawn from
// Normal(mu, sigma) where mu and sigma are the mean and the sample standard
// deviation (ddof=1) of the historical log returns. When sigma is zero the
// walk degenerates to a deterministic drift and all bands collapse onto the
// mean path.
//
// The per-step bands are the (1±confidence)/2 percentiles across paths; the
// date axis is the next `horizon` business days strictly after the last
// historical date, weekends excluded, no holiday calendar.
//
// The random source is an explicit parameter so tests can seed it; a nil rng
// falls back to a time-seeded source.
func Forecast(ticker string, history []Candle, horizon, paths int, confidence float64, rng *rand.Rand) (*ForecastResult, error) {
	if len(history) < 2 {
		return nil, ErrInsufficientData
	}
	if horizon <= 0 {
		return nil, invalidInput("horizon", "non-positive horizon %d", horizon)
	}
	if paths <= 0 {
		paths = DefaultForecastPaths
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, invalidInput("confidence", "confidence %v outside (0,1)", confidence)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	closes := make([]float64, len(history))
	for i, c := range history {
		closes[i] = c.Close.InexactFloat64()
		if closes[i] <= 0 || math.IsNaN(closes[i]) || math.IsInf(closes[i], 0) {
			return nil, invalidInput("history", "non-positive close %v on %s", closes[i], c.Date)
		}
	}

	// Daily log returns and their statistics.
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = math.Log(closes[i] / closes[i-1])
	}
	mu := stat.Mean(returns, nil)
	sigma := stat.StdDev(returns, nil) // sample standard deviation
	if len(returns) < 2 {
		// A single return has no spread to estimate.
		sigma = 0
	}

	lastPrice := closes[len(closes)-1]
	lastDate := history[len(history)-1].Date

	// Simulate. sims[p][t] is the price of path p at step t.
	sims := make([][]float64, paths)
	for p := 0; p < paths; p++ {
		sims[p] = make([]float64, horizon)
		price := lastPrice
		for t := 0; t < horizon; t++ {
			price *= math.Exp(rng.NormFloat64()*sigma + mu)
			sims[p][t] = price
		}
	}

	// Aggregate per time step across paths.
	lower := (1 - confidence) / 2
	upper := (1 + confidence) / 2
	result := &ForecastResult{
		Ticker:    ticker,
		LastPrice: lastPrice,
		Dates:     BusinessDaysAfter(lastDate, horizon),
		MeanPath:  make([]float64, horizon),
		UpperBand: make([]float64, horizon),
		LowerBand: make([]float64, horizon),
	}
	step := make([]float64, paths)
	for t := 0; t < horizon; t++ {
		for p := 0; p < paths; p++ {
			step[p] = sims[p][t]
		}
		result.MeanPath[t] = stat.Mean(step, nil)
		sort.Float64s(step)
		result.UpperBand[t] = stat.Quantile(upper, stat.Empirical, step, nil)
		result.LowerBand[t] = stat.Quantile(lower, stat.Empirical, step, nil)
	}
	return result, nil
}
