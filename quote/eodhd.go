// Package quote implements the market-data side of the dashboard: an EODHD
// backed QuoteProvider with a daily disk cache, an intraday price fallback,
// an in-memory provider for tests, and the market summary and trending
// computations built on top of any provider.
package quote

import (
	"fmt"
	"net/url"
	"os"

	"github.com/mjoubert/finboard"
	"github.com/shopspring/decimal"
)

// EnvAPIKey is the environment variable holding the EODHD API token.
const EnvAPIKey = "FINBOARD_EODHD_KEY"

// Client fetches end-of-day market data from the EODHD API. Responses are
// cached on disk and expire daily, so repeated dashboard refreshes in the
// same day cost a single API call per ticker.
type Client struct {
	apiKey string
}

// NewClient returns an EODHD client for the given API token.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// NewClientFromEnv returns an EODHD client configured from EnvAPIKey.
func NewClientFromEnv() (*Client, error) {
	key := os.Getenv(EnvAPIKey)
	if key == "" {
		return nil, fmt.Errorf("environment variable %s is not set", EnvAPIKey)
	}
	return NewClient(key), nil
}

// History returns up to `days` of daily candles for a ticker, oldest first.
//
// An unknown ticker yields an empty slice and a nil error, which the
// valuation engine treats as "skip". A transport failure wraps
// finboard.ErrQuoteSourceUnavailable via jwget.
func (c *Client) History(ticker string, days int) ([]finboard.Candle, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	//
	// The api supports from and to in the format 'YYYY-MM-DD', bounds
	// included. We over-fetch calendar days to cover weekends.
	to := finboard.Today()
	from := to.Add(-2*days - 4)
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(ticker), url.QueryEscape(c.apiKey), from, to)

	type info struct {
		Date   finboard.Date   `json:"date"`
		Open   decimal.Decimal `json:"open"`
		High   decimal.Decimal `json:"high"`
		Low    decimal.Decimal `json:"low"`
		Close  decimal.Decimal `json:"close"`
		Volume int64           `json:"volume"`
	}
	content := make([]info, 0)
	if err := jwget(newDailyCachingClient(), addr, &content); err != nil {
		return nil, err
	}

	candles := make([]finboard.Candle, 0, len(content))
	for _, i := range content {
		candles = append(candles, finboard.Candle{
			Date:   i.Date,
			Open:   i.Open,
			High:   i.High,
			Low:    i.Low,
			Close:  i.Close,
			Volume: i.Volume,
		})
	}
	if len(candles) > days {
		candles = candles[len(candles)-days:]
	}
	return candles, nil
}

// Metadata resolves the display name of a ticker through the EODHD search
// API. A ticker the API does not know yields an empty Metadata, not an error.
func (c *Client) Metadata(ticker string) (finboard.Metadata, error) {
	// https://eodhd.com/api/search/AAPL?api_token=demo&fmt=json
	addr := fmt.Sprintf("https://eodhd.com/api/search/%s?fmt=json&api_token=%s",
		url.PathEscape(ticker), url.QueryEscape(c.apiKey))

	type result struct {
		Code string `json:"Code"`
		Name string `json:"Name"`
	}
	results := make([]result, 0)
	if err := jwget(newDailyCachingClient(), addr, &results); err != nil {
		return finboard.Metadata{}, err
	}
	for _, r := range results {
		if r.Code == ticker || len(results) == 1 {
			return finboard.Metadata{DisplayName: r.Name}, nil
		}
	}
	if len(results) > 0 {
		return finboard.Metadata{DisplayName: results[0].Name}, nil
	}
	return finboard.Metadata{}, nil
}

// check the provider contract at compile time.
var _ finboard.QuoteProvider = (*Client)(nil)
