package portafolio

import (
	"fmt"
	"math"
)

// GoalParameters are the user's saving targets, persisted in the store and
// edited between sessions.
type GoalParameters struct {
	TargetCapital       Money `json:"capital_meta"`
	MonthlyContribution Money `json:"inversion_mensual"`
	TargetMonthlyIncome Money `json:"ingreso_pasivo_objetivo"`
}

// DefaultGoalParameters returns the parameters used before the user sets any.
func DefaultGoalParameters() GoalParameters {
	return GoalParameters{
		TargetCapital:       COP(100_000_000),
		MonthlyContribution: COP(1_000_000),
		TargetMonthlyIncome: COP(2_000_000),
	}
}

// maxProjectionMonths caps every month-by-month projection at 50 years.
// Reaching the cap is reported as the "50+ years" sentinel, never as a
// numeric month count.
const maxProjectionMonths = 600

// Horizon is the outcome of a time-to-target projection. It distinguishes
// the unreachable case (no contribution, no growth) from the merely too
// distant one (past the 50 year cap).
type Horizon struct {
	Months   float64
	Infinite bool
	Capped   bool
}

// String formats the horizon as whole years, months and days.
func (h Horizon) String() string {
	switch {
	case h.Infinite:
		return "never"
	case h.Capped:
		return "50+ years"
	default:
		return FormatMonths(h.Months)
	}
}

// FormatMonths renders a month count as "N years M months", adding days only
// below one year so short horizons keep their precision.
func FormatMonths(months float64) string {
	if months <= 0 {
		return "0 months"
	}
	years := int(months) / 12
	rem := months - float64(years*12)
	whole := int(rem)
	days := int(math.Round((rem - float64(whole)) * 30))
	if days == 30 {
		whole, days = whole+1, 0
	}
	if whole == 12 {
		years, whole = years+1, 0
	}

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if whole > 0 {
		parts = append(parts, plural(whole, "month"))
	}
	if years == 0 && days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if len(parts) == 0 {
		return "0 months"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// LinearMonths projects the time to reach target by contributions alone, no
// compounding: (target - current) / contribution. Already-met targets take 0
// months, and a zero contribution makes the target unreachable. The 50 year
// cap is only a display clamp shared with CompoundMonths; unlike there, the
// linear count past it is still well defined.
func LinearMonths(current, target, contribution Money) Horizon {
	if !target.IsPositive() || current.GreaterThanOrEqual(target) {
		return Horizon{}
	}
	if !contribution.IsPositive() {
		return Horizon{Infinite: true}
	}
	months := target.Sub(current).AsFloat() / contribution.AsFloat()
	if months > maxProjectionMonths {
		return Horizon{Capped: true}
	}
	return Horizon{Months: months}
}

// CompoundMonths projects the time to reach target contributing every month
// and compounding at annualRate/12. The projection is iterative rather than
// closed-form so it matches the month-by-month simulations used elsewhere.
func CompoundMonths(current, target, contribution Money, annualRate Percent) Horizon {
	if !target.IsPositive() || current.GreaterThanOrEqual(target) {
		return Horizon{}
	}
	monthlyFactor := 1 + annualRate.Fraction()/12
	if !contribution.IsPositive() && monthlyFactor <= 1 {
		return Horizon{Infinite: true}
	}

	capital := current.AsFloat()
	goal := target.AsFloat()
	add := contribution.AsFloat()
	for m := 1; m <= maxProjectionMonths; m++ {
		capital = (capital + add) * monthlyFactor
		if capital >= goal {
			return Horizon{Months: float64(m)}
		}
	}
	return Horizon{Capped: true}
}

// RequiredMonthlyRate is the monthly rate the productive capital would need
// to yield the target income: target / productive * 100. Zero productive
// capital yields 0, the caller reports non-viability.
func RequiredMonthlyRate(targetIncome, productiveCapital Money) Percent {
	if !productiveCapital.IsPositive() {
		return 0
	}
	return Percent(targetIncome.AsFloat() / productiveCapital.AsFloat() * 100)
}

// GoalReport bundles the projections shown on the goal screen.
type GoalReport struct {
	Params       GoalParameters
	Current      Money
	Linear       Horizon
	Compound     Horizon
	RequiredRate Percent
	CurrentRate  Percent
}

// ComputeGoalReport runs both projection models against the snapshot.
func ComputeGoalReport(s Snapshot, p GoalParameters) GoalReport {
	return GoalReport{
		Params:       p,
		Current:      s.TotalCapital,
		Linear:       LinearMonths(s.TotalCapital, p.TargetCapital, p.MonthlyContribution),
		Compound:     CompoundMonths(s.TotalCapital, p.TargetCapital, p.MonthlyContribution, s.AnnualizedRate),
		RequiredRate: RequiredMonthlyRate(p.TargetMonthlyIncome, s.ProductiveCapital),
		CurrentRate:  s.AnnualizedRate.Monthly(),
	}
}
