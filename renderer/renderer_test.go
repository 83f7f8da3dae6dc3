package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/mjoubert/finboard"
	"github.com/mjoubert/finboard/quote"
	"github.com/shopspring/decimal"
)

func TestValuationMarkdown(t *testing.T) {
	v := &finboard.Valuation{
		TotalValue: finboard.USD(2000),
		LineItems: []finboard.LineItem{
			{
				Ticker:            "AAPL",
				Name:              "Apple Inc",
				Quantity:          finboard.Q(10),
				UnitPrice:         finboard.USD(150),
				Value:             finboard.USD(1500),
				ChangePercent:     finboard.Percent(3.45),
				AllocationPercent: finboard.Percent(75),
				Category:          finboard.Equity,
			},
			{
				Ticker:            "CASH",
				Name:              "Cash",
				Value:             finboard.USD(500),
				AllocationPercent: finboard.Percent(25),
				Category:          finboard.Cash,
			},
		},
	}

	got := ValuationMarkdown(v)
	for _, want := range []string{"# Portfolio Valuation", "Apple Inc", "+3.45%", "75.00%", "$2,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("ValuationMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestValuationMarkdown_Outage(t *testing.T) {
	v := &finboard.Valuation{Err: finboard.ErrQuoteSourceUnavailable}

	got := ValuationMarkdown(v)
	if !strings.Contains(got, "Quote source unavailable") {
		t.Errorf("outage report missing warning:\n%s", got)
	}
	if strings.Contains(got, "| Asset |") {
		t.Errorf("outage report should not contain the holdings table:\n%s", got)
	}
}

func TestHarvestMarkdown_Empty(t *testing.T) {
	got := HarvestMarkdown(nil)
	if !strings.Contains(got, "No positions currently qualify") {
		t.Errorf("empty harvest report missing placeholder:\n%s", got)
	}
}

func TestRetirementMarkdown(t *testing.T) {
	results := []*finboard.RetirementResult{
		{
			AccountType:        finboard.Traditional,
			AnnualContribution: finboard.USD(6000),
			Years:              20,
			GrossFutureValue:   finboard.USD(245972),
			CurrentTaxSavings:  finboard.USD(2400),
			NetValue:           finboard.USD(186938),
		},
		{
			AccountType:        finboard.Roth,
			AnnualContribution: finboard.USD(6000),
			Years:              20,
			GrossFutureValue:   finboard.USD(245972),
			NetValue:           finboard.USD(245972),
		},
	}

	got := RetirementMarkdown(results)
	for _, want := range []string{"Traditional", "Roth", "$6,000.00", "20 years"} {
		if !strings.Contains(got, want) {
			t.Errorf("RetirementMarkdown missing %q in:\n%s", want, got)
		}
	}
}

func TestForecastMarkdown_ThinsLongHorizon(t *testing.T) {
	n := 90
	r := &finboard.ForecastResult{Ticker: "AAPL", LastPrice: 100}
	d := finboard.NewDate(2025, time.June, 2)
	for i := 0; i < n; i++ {
		d = d.NextBusinessDay()
		r.Dates = append(r.Dates, d)
		r.MeanPath = append(r.MeanPath, 100)
		r.UpperBand = append(r.UpperBand, 110)
		r.LowerBand = append(r.LowerBand, 90)
	}

	got := ForecastMarkdown(r)
	rows := strings.Count(got, "| 2025-")
	if rows > forecastMaxRows+1 {
		t.Errorf("forecast table has %d rows, want at most %d", rows, forecastMaxRows+1)
	}
	if !strings.Contains(got, r.Dates[n-1].String()) {
		t.Errorf("forecast table missing the final date %s:\n%s", r.Dates[n-1], got)
	}
}

func TestMarketSummaryMarkdown(t *testing.T) {
	snapshots := []quote.IndexSnapshot{
		{
			Name:   "S&P 500",
			Ticker: "^GSPC",
			Quote:  finboard.Quote{Ticker: "^GSPC", CurrentPrice: decimal.NewFromInt(5050)},
			Change: finboard.Percent(1),
		},
		{Name: "Dow Jones", Ticker: "^DJI"},
	}

	got := MarketSummaryMarkdown(snapshots)
	for _, want := range []string{"S&P 500", "5050.00", "+1.00%", "n/a"} {
		if !strings.Contains(got, want) {
			t.Errorf("MarketSummaryMarkdown missing %q in:\n%s", want, got)
		}
	}
}
