package portafolio

import "github.com/Keiner111/Analsis-de-portafolio/date"

// Snapshot is the set of aggregate figures derived from the normalized rows.
// It is a pure computation, never persisted as authoritative: a fresh upload
// recomputes everything.
type Snapshot struct {
	On date.Date

	TotalCapital      Money
	ProductiveCapital Money
	MonthlyIncome     Money
	AnnualIncome      Money

	// AnnualizedRate is the weighted average annual rate of the productive
	// capital, 0 when there is none.
	AnnualizedRate Percent

	// Diversification is 1 minus the Herfindahl index of the capital shares,
	// 0 for a single holding, approaching 1 as capital spreads out.
	Diversification float64
}

// ComputeSnapshot derives the aggregate figures from the rows. An empty
// portfolio yields a zero-valued snapshot, not an error.
func ComputeSnapshot(on date.Date, rows []InvestmentRow) Snapshot {
	s := Snapshot{
		On:                on,
		TotalCapital:      COP(0),
		ProductiveCapital: COP(0),
		MonthlyIncome:     COP(0),
		AnnualIncome:      COP(0),
	}
	for _, r := range rows {
		s.TotalCapital = s.TotalCapital.Add(r.Amount)
		s.MonthlyIncome = s.MonthlyIncome.Add(r.MonthlyInterest)
		if r.Productive() {
			s.ProductiveCapital = s.ProductiveCapital.Add(r.Amount)
		}
	}
	s.AnnualIncome = s.MonthlyIncome.MulFloat(12)
	if s.ProductiveCapital.IsPositive() {
		s.AnnualizedRate = Percent(s.AnnualIncome.AsFloat() / s.ProductiveCapital.AsFloat() * 100)
	}
	s.Diversification = DiversificationIndex(rows)
	return s
}

// DiversificationIndex measures how evenly capital is spread across the
// holdings: 1 - sum(share_i^2). A single holding scores 0, N equal holdings
// score 1 - 1/N.
func DiversificationIndex(rows []InvestmentRow) float64 {
	total := 0.0
	for _, r := range rows {
		total += r.Amount.AsFloat()
	}
	if total <= 0 {
		return 0
	}
	hhi := 0.0
	for _, r := range rows {
		share := r.Amount.AsFloat() / total
		hhi += share * share
	}
	return 1 - hhi
}

// TypeShares returns the percentage of total capital held in each investment
// type, keyed by normalized type. Percentages sum to 100 for a non-empty
// portfolio.
func TypeShares(rows []InvestmentRow) map[string]Percent {
	total := 0.0
	byType := make(map[string]float64)
	for _, r := range rows {
		total += r.Amount.AsFloat()
		byType[TypeKey(r.Type)] += r.Amount.AsFloat()
	}
	shares := make(map[string]Percent, len(byType))
	if total <= 0 {
		return shares
	}
	for k, v := range byType {
		shares[k] = Percent(v / total * 100)
	}
	return shares
}
