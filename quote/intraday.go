package quote

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mjoubert/finboard"
	"github.com/shopspring/decimal"
)

// The EOD feed lags by up to a day; during trading hours a chart endpoint
// gives a fresher last price. The payload is a deeply nested chart document,
// so the price is plucked out with a jsonpath instead of a dedicated struct.
//
//	{
//	    "series": {
//	        "intraday": {
//	            "data": [[1717405200000, 185.32], ...]
//	        }
//	    }
//	}

// intradayLast retrieves the most recent traded price of an instrument from
// a chart-style JSON endpoint. It returns NaN and an error when the payload
// does not carry a usable price.
func intradayLast(client *http.Client, addr, name string) (float64, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", name, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", name, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", name, path, "not a float", jval)
	}
	if val == 0 {
		// an empty chart sometimes reports a flat zero, no value to return
		return math.NaN(), fmt.Errorf("empty intraday price for %q", name)
	}
	return val, nil
}

// intradayChartURL builds the chart endpoint for a ticker.
func (c *Client) intradayChartURL(ticker string) string {
	return fmt.Sprintf("https://eodhd.com/api/intraday/%s?fmt=json&interval=5m&api_token=%s",
		url.PathEscape(ticker), url.QueryEscape(c.apiKey))
}

// IntradayLast returns the latest intraday price for a ticker, or an error
// when no intraday data is available. Callers fall back to the last EOD
// close.
func (c *Client) IntradayLast(ticker string) (float64, error) {
	// Intraday responses are deliberately not disk-cached, they change
	// during the day.
	return intradayLast(new(http.Client), c.intradayChartURL(ticker), ticker)
}

// Latest returns the freshest known price for a ticker: the intraday chart
// price when available, the last end-of-day close otherwise.
func (c *Client) Latest(ticker string) (finboard.Quote, error) {
	history, err := c.History(ticker, 2)
	if err != nil {
		return finboard.Quote{}, err
	}
	meta, _ := c.Metadata(ticker)
	q, ok := finboard.NewQuote(ticker, meta.DisplayName, history)
	if !ok {
		return finboard.Quote{}, fmt.Errorf("no quote data for %q", ticker)
	}
	if last, err := c.IntradayLast(ticker); err == nil {
		q.CurrentPrice = decimal.NewFromFloat(last)
		q.AsOf = finboard.Today()
	}
	return q, nil
}
