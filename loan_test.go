package portafolio

import (
	"math"
	"testing"
)

func TestScheduleCompleteness(t *testing.T) {
	// every modality must amortize the full principal and end at zero
	for _, modality := range []Modality{FixedInstallment, DecreasingBalance, BulletPrincipal} {
		s := LoanScenario{Principal: 10_000_000, MonthlyRate: 1.36, TermMonths: 24, Modality: modality}
		plan, err := s.Schedule()
		if err != nil {
			t.Fatalf("%v: Schedule() error = %v", modality, err)
		}
		if len(plan) != 24 {
			t.Fatalf("%v: schedule has %d rows, want 24", modality, len(plan))
		}
		totalPrincipal := 0.0
		for _, p := range plan {
			totalPrincipal += p.Principal
		}
		approx(t, modality.String()+" principal sum", totalPrincipal, 10_000_000, 0.01)
		if final := plan[len(plan)-1].Balance; final != 0 {
			t.Errorf("%v: final balance = %v, want 0", modality, final)
		}
	}
}

func TestFixedInstallmentSchedule(t *testing.T) {
	s := LoanScenario{Principal: 10_000_000, MonthlyRate: 1.36, TermMonths: 24, Modality: FixedInstallment}
	plan, err := s.Schedule()
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	// total interest = 10M * 1.36% * 24 = 3_264_000
	approx(t, "TotalInterest", plan.TotalInterest(), 3_264_000, 0.01)
	wantInstallment := (10_000_000 + 3_264_000.0) / 24
	for _, p := range plan {
		approx(t, "installment", p.Installment, wantInstallment, 0.01)
	}
	approx(t, "FirstInstallment", s.FirstInstallment(), wantInstallment, 0.01)
}

func TestDecreasingBalanceSchedule(t *testing.T) {
	s := LoanScenario{Principal: 12_000_000, MonthlyRate: 1, TermMonths: 12, Modality: DecreasingBalance}
	plan, err := s.Schedule()
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	// first month: interest on the full principal
	approx(t, "first interest", plan[0].Interest, 120_000, 0.01)
	// last month: interest on one remaining share
	approx(t, "last interest", plan[11].Interest, 10_000, 0.01)
	for m := 1; m < len(plan); m++ {
		if plan[m].Installment >= plan[m-1].Installment {
			t.Errorf("installments must decrease, month %d %v >= month %d %v", m+1, plan[m].Installment, m, plan[m-1].Installment)
		}
	}
}

func TestBulletPrincipalSchedule(t *testing.T) {
	s := LoanScenario{Principal: 10_000_000, MonthlyRate: 1.36, TermMonths: 24, Modality: BulletPrincipal}
	plan, err := s.Schedule()
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	for m := 0; m < 23; m++ {
		approx(t, "interest-only installment", plan[m].Installment, 136_000, 0.01)
		if plan[m].Balance != 10_000_000 {
			t.Errorf("month %d balance = %v, want the full principal", m+1, plan[m].Balance)
		}
	}
	approx(t, "final installment", plan[23].Installment, 10_136_000, 0.01)
}

func TestScheduleInvalidInputs(t *testing.T) {
	s := LoanScenario{Principal: 1_000_000, MonthlyRate: 1, TermMonths: 0}
	if _, err := s.Schedule(); err == nil {
		t.Error("Schedule() with zero term expected an error")
	}
	if got := s.FirstInstallment(); !math.IsInf(got, 1) {
		t.Errorf("FirstInstallment() with zero term = %v, want +Inf", got)
	}
}

func TestZeroRateDegeneratesToFlat(t *testing.T) {
	s := LoanScenario{Principal: 12_000_000, MonthlyRate: 0, TermMonths: 12, Modality: FixedInstallment}
	plan, err := s.Schedule()
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	for _, p := range plan {
		approx(t, "flat installment", p.Installment, 1_000_000, 1e-9)
		if p.Interest != 0 {
			t.Errorf("month %d interest = %v, want 0", p.Month, p.Interest)
		}
	}
}

func TestEffectiveAnnualCost(t *testing.T) {
	s := LoanScenario{Principal: 10_000_000, MonthlyRate: 1, TermMonths: 12, Modality: FixedInstallment}
	// 12 months at 1% simple: 12% of principal over exactly one year
	approx(t, "EffectiveAnnualCost", float64(s.EffectiveAnnualCost()), 12, 1e-9)
}

func TestExpectedValueBulletPenalty(t *testing.T) {
	r := DefaultRiskParams()
	flat := LoanScenario{Principal: 10_000_000, MonthlyRate: 1.36, TermMonths: 24, Modality: FixedInstallment}
	bullet := flat
	bullet.Modality = BulletPrincipal

	// same cash interest, but the bullet's default probability is scaled by
	// the configured multiplier, so its expected value must be lower
	if evF, evB := flat.ExpectedValue(r), bullet.ExpectedValue(r); evB >= evF {
		t.Errorf("bullet EV %v should be below fixed EV %v", evB, evF)
	}

	// the multiplier is a parameter: neutralizing it removes the penalty
	r.BulletMultiplier = 1
	if evF, evB := flat.ExpectedValue(r), bullet.ExpectedValue(r); math.Abs(evF-evB) > 0.01 {
		t.Errorf("with multiplier 1 both EVs should match: fixed %v bullet %v", evF, evB)
	}
}

func TestBreakEvenInstallment(t *testing.T) {
	s := LoanScenario{Principal: 10_000_000, MonthlyRate: 2, TermMonths: 12, Modality: FixedInstallment}
	// at a 12% annual portfolio rate the break-even uses 1% monthly
	got := s.BreakEvenInstallment(12)
	want := LoanScenario{Principal: 10_000_000, MonthlyRate: 1, TermMonths: 12, Modality: FixedInstallment}.FirstInstallment()
	approx(t, "BreakEvenInstallment", got, want, 1e-9)
}

func TestParseModality(t *testing.T) {
	for _, m := range []Modality{FixedInstallment, DecreasingBalance, BulletPrincipal} {
		got, err := ParseModality(m.String())
		if err != nil {
			t.Fatalf("ParseModality(%q) error = %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseModality(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseModality("balloon"); err == nil {
		t.Error("ParseModality(\"balloon\") expected an error")
	}
}
