package portafolio

import (
	"math"
	"testing"
)

// approx fails the test when got is not within tolerance of want.
func approx(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.IsInf(want, 1) {
		if !math.IsInf(got, 1) {
			t.Errorf("%s = %g, want +Inf", name, got)
		}
		return
	}
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %g, want %g (±%g)", name, got, want, tolerance)
	}
}

// productive and idle build test rows from consts.
func productive(label string, amount, monthlyInterest float64) InvestmentRow {
	return InvestmentRow{Label: label, Type: label, Amount: COP(amount), MonthlyInterest: COP(monthlyInterest)}
}

func idle(label string, amount float64) InvestmentRow {
	return InvestmentRow{Label: label, Type: label, Amount: COP(amount)}
}
