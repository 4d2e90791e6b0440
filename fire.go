package portafolio

import "math"

// The FIRE figures deliberately use simple interest, in contrast with the
// compounding goal projection: the two are distinct product features and
// must not be unified.

// FireTarget is the capital whose withdrawals cover the monthly income at
// the given annual withdrawal rate: (income * 12) / (rate / 100). A rate of
// zero or less has no finite answer and yields zero with ok=false.
func FireTarget(monthlyIncome Money, withdrawalRate Percent) (target Money, ok bool) {
	if withdrawalRate <= 0 {
		return COP(0), false
	}
	return monthlyIncome.MulFloat(12).DivFloat(withdrawalRate.Fraction()), true
}

// SimpleYearsToTarget solves target = capital * (1 + rate/100 * years) for
// years. Interest accrues on the initial capital only, never on accrued
// interest, and there are no contributions along the way.
//
// Non-positive capital or rate yields +Inf, even against an already-met
// target, and the caller renders that as "not viable" rather than a math
// error. With positive inputs an already-met target takes 0 years.
func SimpleYearsToTarget(capital, target Money, annualRate Percent) float64 {
	if !capital.IsPositive() || annualRate <= 0 {
		return math.Inf(1)
	}
	if capital.GreaterThanOrEqual(target) {
		return 0
	}
	return (target.AsFloat()/capital.AsFloat() - 1) / annualRate.Fraction()
}

// FirePlan is the outcome of the independence calculation.
type FirePlan struct {
	WithdrawalRate Percent
	Target         Money
	Viable         bool

	// Years to the target under pure simple interest, +Inf when not viable.
	Years float64

	// Compound is the informational comparison against the compounding
	// model, to show the acceleration effect.
	Compound Horizon
}

// Months returns the simple-interest horizon in months, +Inf when not viable.
func (p FirePlan) Months() float64 {
	if math.IsInf(p.Years, 1) {
		return math.Inf(1)
	}
	return p.Years * 12
}

// HorizonString renders the simple-interest horizon.
func (p FirePlan) HorizonString() string {
	if !p.Viable || math.IsInf(p.Years, 1) {
		return "not viable"
	}
	return FormatMonths(p.Months())
}

// ComputeFirePlan computes the independence number and the time to reach it
// from the snapshot. The withdrawal rate defaults to the portfolio's own
// annualized rate when the caller passes 0; it is a starting point, not a
// hardcoded 4% rule.
func ComputeFirePlan(s Snapshot, withdrawalRate Percent) FirePlan {
	if withdrawalRate == 0 {
		withdrawalRate = s.AnnualizedRate
	}
	target, ok := FireTarget(s.MonthlyIncome, withdrawalRate)
	plan := FirePlan{WithdrawalRate: withdrawalRate, Target: target, Viable: ok}
	if !ok {
		plan.Years = math.Inf(1)
		return plan
	}
	plan.Years = SimpleYearsToTarget(s.TotalCapital, target, withdrawalRate)
	if math.IsInf(plan.Years, 1) {
		plan.Viable = false
	}
	plan.Compound = CompoundMonths(s.TotalCapital, target, COP(0), withdrawalRate)
	return plan
}
