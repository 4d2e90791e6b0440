package portafolio

import "strings"

// InvestmentRow is one line item of the uploaded portfolio table, after
// normalization. Rows are immutable for the duration of an analysis session,
// a fresh upload replaces the whole set.
type InvestmentRow struct {
	Label           string
	Owner           string
	Type            string
	Amount          Money
	MonthlyInterest Money
}

// Productive reports whether the row currently generates income.
func (r InvestmentRow) Productive() bool { return r.MonthlyInterest.IsPositive() }

// Rate returns the row's monthly rate of return in percent, 0 when the row
// has no capital.
func (r InvestmentRow) Rate() Percent {
	if !r.Amount.IsPositive() {
		return 0
	}
	return Percent(r.MonthlyInterest.AsFloat() / r.Amount.AsFloat() * 100)
}

// TypeKey normalizes an investment type for use as a map key: lowercased and
// trimmed, so "CDT " and "cdt" land on the same bucket.
func TypeKey(investmentType string) string {
	return strings.ToLower(strings.TrimSpace(investmentType))
}
