package finboard

import (
	"testing"
	"time"
)

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		from Date
		want Date
	}{
		// Thursday -> Friday.
		{NewDate(2025, time.June, 5), NewDate(2025, time.June, 6)},
		// Friday skips the weekend.
		{NewDate(2025, time.June, 6), NewDate(2025, time.June, 9)},
		// Saturday lands on Monday too.
		{NewDate(2025, time.June, 7), NewDate(2025, time.June, 9)},
	}
	for _, tc := range tests {
		if got := tc.from.NextBusinessDay(); got != tc.want {
			t.Errorf("NextBusinessDay(%s) = %s, want %s", tc.from, got, tc.want)
		}
	}
}

func TestBusinessDaysAfter(t *testing.T) {
	// Starting Friday 2025-06-06, the next 5 business days are Mon-Fri.
	got := BusinessDaysAfter(NewDate(2025, time.June, 6), 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0] != NewDate(2025, time.June, 9) || got[4] != NewDate(2025, time.June, 13) {
		t.Errorf("range = %s..%s, want 2025-06-09..2025-06-13", got[0], got[4])
	}
	for _, d := range got {
		if !d.IsBusinessDay() {
			t.Errorf("%s is not a business day", d)
		}
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d := MustParseDate("2025-06-09")
	if d.String() != "2025-06-09" {
		t.Errorf("round trip = %s, want 2025-06-09", d)
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected an error for a malformed date")
	}
}
