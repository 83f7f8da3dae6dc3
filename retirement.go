package finboard

import "github.com/shopspring/decimal"

// AccountType is a retirement-account flavor.
type AccountType string

const (
	Traditional AccountType = "Traditional"
	Roth        AccountType = "Roth"
	Taxable     AccountType = "Taxable"
)

// AnnualReturn is the assumed yearly return of every retirement projection.
var AnnualReturn = decimal.NewFromFloat(0.07)

// taxableDragShare and taxableGainsRate model the yearly tax drag of a
// taxable account: 70% of returns are assumed taxed at the 15% capital-gains
// rate every year, the rest tax-deferred.
var (
	taxableDragShare = decimal.NewFromFloat(0.7)
	taxableGainsRate = decimal.NewFromFloat(0.15)
)

// RetirementResult compares what a stream of contributions becomes in a
// given account type.
type RetirementResult struct {
	AccountType        AccountType `json:"account_type"`
	AnnualContribution Money       `json:"annual_contribution"`
	Years              int         `json:"years_to_retirement"`
	GrossFutureValue   Money       `json:"gross_future_value"`
	CurrentTaxSavings  Money       `json:"current_tax_savings"`
	TaxesAtWithdrawal  Money       `json:"taxes_at_withdrawal"`
	NetValue           Money       `json:"net_retirement_value"`
}

// futureValueOfAnnuity computes C * ((1+r)^n - 1) / r, degenerating to the
// simple sum C*n when r is zero (no compounding).
func futureValueOfAnnuity(contribution Money, r decimal.Decimal, years int) Money {
	n := decimal.NewFromInt(int64(years))
	if r.IsZero() {
		return contribution.Scale(n)
	}
	one := decimal.NewFromInt(1)
	factor := one.Add(r).Pow(n).Sub(one).Div(r)
	return contribution.Scale(factor)
}

// RetirementBenefit projects an annual contribution stream to retirement and
// compares the tax treatment of the chosen account type.
//
// All variants compound at AnnualReturn with the standard future-value-of-
// annuity formula. Traditional deducts contributions now and taxes the full
// withdrawal at the retirement bracket; Roth has neither deduction nor
// withdrawal tax; Taxable reduces the effective return by an annual tax drag
// and taxes only the gain portion at the capital-gains rate on withdrawal.
//
// Brackets are marginal rates expressed as decimals in [0,1].
func RetirementBenefit(contribution Money, account AccountType, currentBracket, retirementBracket decimal.Decimal, years int) (*RetirementResult, error) {
	if contribution.IsNegative() {
		return nil, invalidInput("annual_contribution", "negative contribution %s", contribution)
	}
	if years < 0 {
		return nil, invalidInput("years", "negative horizon %d", years)
	}
	one := decimal.NewFromInt(1)
	if currentBracket.IsNegative() || currentBracket.GreaterThan(one) {
		return nil, invalidInput("current_bracket", "rate %s outside [0,1]", currentBracket)
	}
	if retirementBracket.IsNegative() || retirementBracket.GreaterThan(one) {
		return nil, invalidInput("retirement_bracket", "rate %s outside [0,1]", retirementBracket)
	}

	n := decimal.NewFromInt(int64(years))
	zero := M(0, contribution.Currency())

	result := &RetirementResult{
		AccountType:        account,
		AnnualContribution: contribution,
		Years:              years,
	}

	switch account {
	case Traditional:
		fv := futureValueOfAnnuity(contribution, AnnualReturn, years)
		result.GrossFutureValue = fv
		result.CurrentTaxSavings = contribution.Scale(currentBracket).Scale(n)
		result.TaxesAtWithdrawal = fv.Scale(retirementBracket)
		result.NetValue = fv.Sub(result.TaxesAtWithdrawal)

	case Roth:
		fv := futureValueOfAnnuity(contribution, AnnualReturn, years)
		result.GrossFutureValue = fv
		result.CurrentTaxSavings = zero
		result.TaxesAtWithdrawal = zero
		result.NetValue = fv

	case Taxable:
		drag := AnnualReturn.Mul(taxableDragShare).Mul(taxableGainsRate)
		effective := AnnualReturn.Sub(drag)
		fv := futureValueOfAnnuity(contribution, effective, years)
		contributed := contribution.Scale(n)
		result.GrossFutureValue = fv
		result.CurrentTaxSavings = zero
		result.TaxesAtWithdrawal = fv.Sub(contributed).Scale(taxableGainsRate)
		result.NetValue = fv.Sub(result.TaxesAtWithdrawal)

	default:
		return nil, invalidInput("account_type", "unknown account type %q", account)
	}

	return result, nil
}
