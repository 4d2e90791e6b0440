package portafolio

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Keiner111/Analsis-de-portafolio/date"
)

func TestComputeBalanceSheet(t *testing.T) {
	s := ComputeSnapshot(date.Today(), []InvestmentRow{
		productive("CDT", 40_000_000, 400_000),
		idle("Ahorro", 10_000_000),
	})
	liabilities := []LiabilityRecord{
		NewLiability("crédito carro", COP(20_000_000), 12),
		NewLiability("tarjeta", COP(5_000_000), 24),
	}

	b := ComputeBalanceSheet(s, liabilities)
	if !b.TotalLiabilities.Equal(COP(25_000_000)) {
		t.Errorf("TotalLiabilities = %v, want $25.000.000", b.TotalLiabilities)
	}
	if !b.NetWorth.Equal(COP(25_000_000)) {
		t.Errorf("NetWorth = %v, want $25.000.000", b.NetWorth)
	}
	approx(t, "DebtRatio", float64(b.DebtRatio), 50, 1e-9)
	// (20M*12 + 5M*24) / 25M = 14.4
	approx(t, "WeightedDebtRate", float64(b.WeightedDebtRate), 14.4, 1e-9)
	// 20M*1% + 5M*2% = 300_000 a month
	if !b.MonthlyDebtCost.Equal(COP(300_000)) {
		t.Errorf("MonthlyDebtCost = %v, want $300.000", b.MonthlyDebtCost)
	}
	// 300_000 of service against 400_000 of income: heavy but payable
	if b.Burden != BurdenHeavy {
		t.Errorf("Burden = %v, want %v", b.Burden, BurdenHeavy)
	}
}

func TestDebtBurdenBands(t *testing.T) {
	income := COP(1_000_000)
	tests := []struct {
		cost float64
		want DebtBurden
	}{
		{0, BurdenNone},
		{100_000, BurdenLight},
		{500_000, BurdenHeavy},
		{1_500_000, BurdenCritical},
	}
	for _, tc := range tests {
		if got := classifyBurden(COP(tc.cost), income); got != tc.want {
			t.Errorf("classifyBurden(%v) = %v, want %v", tc.cost, got, tc.want)
		}
	}
	// any debt service with no income at all is critical
	if got := classifyBurden(COP(1), COP(0)); got != BurdenCritical {
		t.Errorf("no income = %v, want %v", got, BurdenCritical)
	}
}

func TestBalanceSheetNoLiabilities(t *testing.T) {
	s := ComputeSnapshot(date.Today(), []InvestmentRow{idle("Ahorro", 10_000_000)})
	b := ComputeBalanceSheet(s, nil)
	if !b.NetWorth.Equal(s.TotalCapital) {
		t.Errorf("NetWorth = %v, want the full capital", b.NetWorth)
	}
	if b.DebtRatio != 0 || b.WeightedDebtRate != 0 || b.Burden != BurdenNone {
		t.Errorf("debt figures should be zero: %+v", b)
	}
}

func TestLiabilityJSONFieldOrder(t *testing.T) {
	l := LiabilityRecord{
		ID:          "abc",
		Description: "crédito",
		Value:       COP(1_000_000),
		AnnualRate:  14,
		CreatedAt:   date.MustParse("2025-06-01"),
	}
	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// stable field order keeps the sidecar files diffable
	s := string(b)
	order := []string{`"id"`, `"descripcion"`, `"valor"`, `"tasa_anual"`, `"fecha_creacion"`}
	last := -1
	for _, key := range order {
		i := strings.Index(s, key)
		if i < 0 || i < last {
			t.Fatalf("field %s out of order in %s", key, s)
		}
		last = i
	}

	var back LiabilityRecord
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Description != l.Description || !back.Value.Equal(l.Value) || !back.AnnualRate.Equal(l.AnnualRate) {
		t.Errorf("round trip = %+v, want %+v", back, l)
	}
}
