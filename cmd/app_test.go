package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mjoubert/finboard"
)

func TestDecodePortfolio(t *testing.T) {
	content := `{
	  "equities": {
	    "AAPL": {"ticker": "AAPL", "quantity": 10, "purchase_price": 120, "holding_period_days": 400}
	  },
	  "fixed_income": {
	    "US10Y": {"ticker": "US10Y", "quantity": 5, "face_value": 1000}
	  },
	  "cash": {"currency": "USD", "amount": 500}
	}`
	file := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	old := *portfolioFile
	*portfolioFile = file
	defer func() { *portfolioFile = old }()

	p, err := DecodePortfolio()
	if err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}

	aapl, ok := p.Equities["AAPL"]
	if !ok {
		t.Fatal("AAPL position missing")
	}
	if !aapl.Quantity.Equal(finboard.Q(10)) {
		t.Errorf("AAPL quantity = %s, want 10", aapl.Quantity)
	}
	if aapl.HoldingDays != 400 {
		t.Errorf("AAPL holding days = %d, want 400", aapl.HoldingDays)
	}
	if !p.Cash.Equal(finboard.USD(500)) {
		t.Errorf("cash = %s, want $500.00", p.Cash)
	}
}

func TestDecodePortfolio_MissingFileIsEmpty(t *testing.T) {
	old := *portfolioFile
	*portfolioFile = filepath.Join(t.TempDir(), "no-such-file.json")
	defer func() { *portfolioFile = old }()

	p, err := DecodePortfolio()
	if err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}
	if len(p.Equities) != 0 || len(p.FixedIncome) != 0 || !p.Cash.IsZero() {
		t.Errorf("expected an empty portfolio, got %+v", p)
	}
}
