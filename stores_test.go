package portafolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Keiner111/Analsis-de-portafolio/date"
)

func TestStoreDefaultsOnMissingFiles(t *testing.T) {
	s := NewStore(t.TempDir())

	goal, err := s.Goal()
	if err != nil {
		t.Fatalf("Goal() error = %v", err)
	}
	if !goal.TargetCapital.Equal(DefaultGoalParameters().TargetCapital) {
		t.Errorf("Goal() = %+v, want defaults", goal)
	}

	liabilities, err := s.Liabilities()
	if err != nil || len(liabilities) != 0 {
		t.Errorf("Liabilities() = %v, %v; want empty, nil", liabilities, err)
	}

	rows, err := s.Rows()
	if err != nil || rows != nil {
		t.Errorf("Rows() = %v, %v; want empty, nil", rows, err)
	}
}

func TestStoreGoalRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	in := GoalParameters{
		TargetCapital:       COP(250_000_000),
		MonthlyContribution: COP(1_500_000),
		TargetMonthlyIncome: COP(3_000_000),
	}
	if err := s.SaveGoal(in); err != nil {
		t.Fatalf("SaveGoal() error = %v", err)
	}
	out, err := s.Goal()
	if err != nil {
		t.Fatalf("Goal() error = %v", err)
	}
	if !out.TargetCapital.Equal(in.TargetCapital) ||
		!out.MonthlyContribution.Equal(in.MonthlyContribution) ||
		!out.TargetMonthlyIncome.Equal(in.TargetMonthlyIncome) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestStoreLiabilities(t *testing.T) {
	s := NewStore(t.TempDir())
	a := NewLiability("crédito carro", COP(30_000_000), 14)
	b := NewLiability("tarjeta", COP(2_000_000), 28)
	if err := s.SaveLiabilities([]LiabilityRecord{a, b}); err != nil {
		t.Fatalf("SaveLiabilities() error = %v", err)
	}

	if err := s.DeleteLiability(a.ID); err != nil {
		t.Fatalf("DeleteLiability() error = %v", err)
	}
	list, err := s.Liabilities()
	if err != nil {
		t.Fatalf("Liabilities() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != b.ID {
		t.Fatalf("after delete = %+v, want only %q", list, b.ID)
	}
	if list[0].Description != "tarjeta" || !list[0].AnnualRate.Equal(28) {
		t.Errorf("record lost fields in round trip: %+v", list[0])
	}

	if err := s.DeleteLiability("no-such-id"); err == nil {
		t.Error("DeleteLiability(unknown) expected an error")
	}
}

func TestStoreRiskLevelsRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	in := RiskLevels{"cdt": 1, "cripto": 3}
	if err := s.SaveRiskLevels(in); err != nil {
		t.Fatalf("SaveRiskLevels() error = %v", err)
	}
	out, err := s.RiskLevels()
	if err != nil {
		t.Fatalf("RiskLevels() error = %v", err)
	}
	if out.Level("cripto") != 3 || out.Level("cdt") != 1 {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestStoreHistorySameDayOverwrite(t *testing.T) {
	s := NewStore(t.TempDir())
	var h CapitalHistory
	on := date.MustParse("2025-06-01")
	h.Append(CapitalRecord{Date: on, CapitalCOP: COP(10_000_000), RateCOP: 4000})
	h.Append(CapitalRecord{Date: on, CapitalCOP: COP(11_000_000), RateCOP: 4100})
	if err := s.SaveHistory(h); err != nil {
		t.Fatalf("SaveHistory() error = %v", err)
	}
	out, err := s.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(out.Records) != 1 {
		t.Fatalf("History() = %d records, want 1 (same-day overwrite)", len(out.Records))
	}
	if !out.Records[0].CapitalCOP.Equal(COP(11_000_000)) {
		t.Errorf("kept record = %+v, want the later one", out.Records[0])
	}
}

func TestStoreCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "meta.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(dir).Goal(); err == nil {
		t.Error("Goal() on a corrupt file expected an error")
	}
}

func TestStoreRowsRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	rows := []InvestmentRow{productive("CDT", 10_000_000, 100_000)}
	if err := s.SaveRows(rows); err != nil {
		t.Fatalf("SaveRows() error = %v", err)
	}
	out, err := s.Rows()
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(out) != 1 || !out[0].Amount.Equal(rows[0].Amount) {
		t.Errorf("round trip = %+v, want %+v", out, rows)
	}
}
