// Package finboard implements the calculation engine behind a personal
// finance dashboard. It turns raw market quotes and a user-supplied
// portfolio into derived, presentation-ready metrics.
//
// The engine is a set of pure, stateless functions organised in three groups:
//   - Valuation: current value and allocation of a mixed portfolio
//     (equities, fixed income, cash) priced from a quote source.
//   - Tax: simplified capital-gains, dividend-tax, tax-loss-harvesting and
//     retirement-account calculations driven by an injectable rate table.
//   - Forecast: a Monte Carlo price projection based on a geometric random
//     walk calibrated on historical log returns.
//
// The engine never talks to the network itself: market data comes in
// through the QuoteProvider interface (see the quote package for the
// default implementation), and results go out as flat, serializable
// records consumed by the renderer, the cmd CLI and the agent package.
//
// Tax rates are illustrative constants, not tax advice, and the forecast
// is a statistical toy, not a prediction.
package finboard
