package finboard

import (
	"errors"
	"fmt"
)

// ErrInsufficientData reports a price history too short to compute return
// statistics from. At least two observations are required.
var ErrInsufficientData = errors.New("insufficient price history")

// ErrQuoteSourceUnavailable reports that the quote source as a whole is
// unreachable, as opposed to a single unknown ticker. Providers wrap their
// transport failures in this sentinel so the valuation engine can tell a
// global outage from a per-ticker miss.
var ErrQuoteSourceUnavailable = errors.New("quote source unavailable")

// InvalidInputError reports a malformed numeric parameter: a negative
// quantity, a non-finite price, a nonsensical horizon. The engine fails fast
// with this error rather than producing silently wrong numbers.
type InvalidInputError struct {
	Field  string // the offending parameter
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

func invalidInput(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
