package portafolio

import (
	"encoding/json"

	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/google/uuid"
)

// LiabilityRecord is one debt the user carries against the portfolio.
type LiabilityRecord struct {
	ID          string
	Description string
	Value       Money
	AnnualRate  Percent
	CreatedAt   date.Date
}

// NewLiability creates a liability with a fresh id, stamped today.
func NewLiability(description string, value Money, annualRate Percent) LiabilityRecord {
	return LiabilityRecord{
		ID:          uuid.NewString(),
		Description: description,
		Value:       value,
		AnnualRate:  annualRate,
		CreatedAt:   date.Today(),
	}
}

// MarshalJSON writes the record with a stable field order.
func (l LiabilityRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("descripcion", l.Description)
	w.Append("valor", l.Value)
	w.Append("tasa_anual", float64(l.AnnualRate))
	w.Append("fecha_creacion", l.CreatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the persisted record.
func (l *LiabilityRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID          string    `json:"id"`
		Description string    `json:"descripcion"`
		Value       Money     `json:"valor"`
		AnnualRate  float64   `json:"tasa_anual"`
		CreatedAt   date.Date `json:"fecha_creacion"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = LiabilityRecord{
		ID:          raw.ID,
		Description: raw.Description,
		Value:       raw.Value,
		AnnualRate:  Percent(raw.AnnualRate),
		CreatedAt:   raw.CreatedAt,
	}
	return nil
}

// BalanceSheet nets the portfolio against the liabilities.
type BalanceSheet struct {
	TotalAssets      Money
	TotalLiabilities Money
	NetWorth         Money

	// DebtRatio is liabilities over assets, in percent, 0 on an empty
	// portfolio.
	DebtRatio Percent

	// WeightedDebtRate is the average annual rate across liabilities,
	// weighted by value.
	WeightedDebtRate Percent

	// MonthlyDebtCost is the monthly interest bill across liabilities.
	MonthlyDebtCost Money

	// Burden classifies the debt service against the passive income.
	Burden DebtBurden
}

// DebtBurden classifies how much of the passive income the debt service
// eats.
type DebtBurden string

const (
	BurdenNone     DebtBurden = "none"
	BurdenLight    DebtBurden = "light"
	BurdenHeavy    DebtBurden = "heavy"
	BurdenCritical DebtBurden = "critical"
)

// classifyBurden buckets the debt service share of the monthly income:
// under 30% light, under 100% heavy, beyond critical.
func classifyBurden(monthlyCost, monthlyIncome Money) DebtBurden {
	if !monthlyCost.IsPositive() {
		return BurdenNone
	}
	if !monthlyIncome.IsPositive() {
		return BurdenCritical
	}
	share := monthlyCost.AsFloat() / monthlyIncome.AsFloat()
	switch {
	case share < 0.3:
		return BurdenLight
	case share < 1:
		return BurdenHeavy
	default:
		return BurdenCritical
	}
}

// ComputeBalanceSheet nets the snapshot against the liability list.
func ComputeBalanceSheet(s Snapshot, liabilities []LiabilityRecord) BalanceSheet {
	total := COP(0)
	weighted := 0.0
	monthlyCost := COP(0)
	for _, l := range liabilities {
		total = total.Add(l.Value)
		weighted += l.Value.AsFloat() * float64(l.AnnualRate)
		monthlyCost = monthlyCost.Add(l.Value.MulFloat(l.AnnualRate.Fraction() / 12))
	}

	b := BalanceSheet{
		TotalAssets:      s.TotalCapital,
		TotalLiabilities: total,
		NetWorth:         s.TotalCapital.Sub(total),
		MonthlyDebtCost:  monthlyCost,
		Burden:           classifyBurden(monthlyCost, s.MonthlyIncome),
	}
	if s.TotalCapital.IsPositive() {
		b.DebtRatio = Percent(total.AsFloat() / s.TotalCapital.AsFloat() * 100)
	}
	if total.IsPositive() {
		b.WeightedDebtRate = Percent(weighted / total.AsFloat())
	}
	return b
}
