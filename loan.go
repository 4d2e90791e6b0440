package portafolio

import (
	"fmt"
	"math"
)

// Modality is the rule that splits a loan's periodic payment between
// interest and principal. All three use simple interest: interest never
// compounds on unpaid interest.
type Modality int

const (
	// FixedInstallment spreads principal plus total simple interest evenly
	// over the term.
	FixedInstallment Modality = iota
	// DecreasingBalance pays a flat principal share plus interest on the
	// remaining balance, so installments shrink over time.
	DecreasingBalance
	// BulletPrincipal pays interest only until the last month, which repays
	// the full principal at once.
	BulletPrincipal
)

func (m Modality) String() string {
	switch m {
	case FixedInstallment:
		return "fixed"
	case DecreasingBalance:
		return "decreasing"
	case BulletPrincipal:
		return "bullet"
	default:
		return "unknown"
	}
}

// ParseModality parses a string into a Modality.
func ParseModality(s string) (Modality, error) {
	switch s {
	case "fixed":
		return FixedInstallment, nil
	case "decreasing":
		return DecreasingBalance, nil
	case "bullet":
		return BulletPrincipal, nil
	default:
		return 0, fmt.Errorf("unknown loan modality: %q", s)
	}
}

// LoanScenario is one loan under evaluation. Immutable per calculation.
type LoanScenario struct {
	Principal   float64
	MonthlyRate Percent
	TermMonths  int
	Modality    Modality
}

// Payment is one row of an amortization schedule.
type Payment struct {
	Month       int
	Installment float64
	Interest    float64
	Principal   float64
	Balance     float64
}

// AmortizationSchedule is the ordered payment plan, one entry per month.
// Principal components sum to the principal and the final balance is zero.
type AmortizationSchedule []Payment

// TotalInterest sums the interest components of the schedule.
func (s AmortizationSchedule) TotalInterest() float64 {
	total := 0.0
	for _, p := range s {
		total += p.Interest
	}
	return total
}

// TotalPaid sums every installment of the schedule.
func (s AmortizationSchedule) TotalPaid() float64 {
	total := 0.0
	for _, p := range s {
		total += p.Installment
	}
	return total
}

// FirstInstallment returns the opening payment. For fixed and bullet plans
// every month but the last looks the same, for decreasing plans this is the
// largest payment.
func (s LoanScenario) FirstInstallment() float64 {
	if s.TermMonths <= 0 {
		// invalid input, signalled loudly rather than a silent zero division
		return math.Inf(1)
	}
	rate := s.MonthlyRate.Fraction()
	term := float64(s.TermMonths)
	switch s.Modality {
	case DecreasingBalance:
		return s.Principal/term + s.Principal*rate
	case BulletPrincipal:
		if s.TermMonths == 1 {
			return s.Principal * (1 + rate)
		}
		return s.Principal * rate
	default:
		totalInterest := s.Principal * rate * term
		return (s.Principal + totalInterest) / term
	}
}

// Schedule produces the full amortization plan for the scenario.
func (s LoanScenario) Schedule() (AmortizationSchedule, error) {
	if s.TermMonths <= 0 {
		return nil, fmt.Errorf("loan term must be at least 1 month, got %d", s.TermMonths)
	}
	if s.Principal <= 0 {
		return nil, fmt.Errorf("loan principal must be positive, got %g", s.Principal)
	}
	rate := s.MonthlyRate.Fraction()
	term := s.TermMonths
	plan := make(AmortizationSchedule, 0, term)

	switch s.Modality {
	case DecreasingBalance:
		flat := s.Principal / float64(term)
		balance := s.Principal
		for m := 1; m <= term; m++ {
			// interest on the balance before this month's reduction
			interest := balance * rate
			balance -= flat
			if m == term {
				balance = 0
			}
			plan = append(plan, Payment{
				Month:       m,
				Installment: flat + interest,
				Interest:    interest,
				Principal:   flat,
				Balance:     balance,
			})
		}

	case BulletPrincipal:
		interest := s.Principal * rate
		for m := 1; m < term; m++ {
			plan = append(plan, Payment{
				Month:       m,
				Installment: interest,
				Interest:    interest,
				Balance:     s.Principal,
			})
		}
		plan = append(plan, Payment{
			Month:       term,
			Installment: interest + s.Principal,
			Interest:    interest,
			Principal:   s.Principal,
			Balance:     0,
		})

	default: // FixedInstallment
		totalInterest := s.Principal * rate * float64(term)
		installment := (s.Principal + totalInterest) / float64(term)
		flat := s.Principal / float64(term)
		interest := totalInterest / float64(term)
		balance := s.Principal
		for m := 1; m <= term; m++ {
			balance -= flat
			if m == term {
				balance = 0
			}
			plan = append(plan, Payment{
				Month:       m,
				Installment: installment,
				Interest:    interest,
				Principal:   flat,
				Balance:     balance,
			})
		}
	}
	return plan, nil
}

// EffectiveAnnualCost is the total interest expressed as an annual percent
// of the principal over the loan's life.
func (s LoanScenario) EffectiveAnnualCost() Percent {
	if s.TermMonths <= 0 || s.Principal <= 0 {
		return 0
	}
	plan, err := s.Schedule()
	if err != nil {
		return 0
	}
	years := float64(s.TermMonths) / 12
	return Percent(plan.TotalInterest() / s.Principal / years * 100)
}

// RiskParams weigh a lending scenario's expected value. The bullet
// multiplier reflects end-concentration risk: the whole principal rides on
// the final payment. It is a tunable heuristic, not a law.
type RiskParams struct {
	ProbDefault      float64 `yaml:"prob_default" json:"prob_default"`
	RecoveryFraction float64 `yaml:"recovery_fraction" json:"recovery_fraction"`
	BulletMultiplier float64 `yaml:"bullet_multiplier" json:"bullet_multiplier"`
}

// DefaultRiskParams returns the standard weighting.
func DefaultRiskParams() RiskParams {
	return RiskParams{ProbDefault: 0.05, RecoveryFraction: 0.4, BulletMultiplier: 1.5}
}

// ExpectedValue is the risk-adjusted outcome of lending under the scenario:
// prob_success * total_interest - prob_default * principal * (1 - recovery).
// Bullet loans scale the default probability by the configured multiplier.
func (s LoanScenario) ExpectedValue(r RiskParams) float64 {
	plan, err := s.Schedule()
	if err != nil {
		return 0
	}
	probDefault := r.ProbDefault
	if s.Modality == BulletPrincipal {
		probDefault *= r.BulletMultiplier
	}
	if probDefault > 1 {
		probDefault = 1
	}
	probSuccess := 1 - probDefault
	return probSuccess*plan.TotalInterest() - probDefault*s.Principal*(1-r.RecoveryFraction)
}

// BreakEvenInstallment recomputes the scenario's opening installment at the
// portfolio's own rate: the payment at which lending stops beating keeping
// the money invested.
func (s LoanScenario) BreakEvenInstallment(portfolioAnnualRate Percent) float64 {
	at := s
	at.MonthlyRate = portfolioAnnualRate.Monthly()
	return at.FirstInstallment()
}
