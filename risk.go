package portafolio

import "sort"

// RiskLevels maps a normalized investment type to a user-assigned level in
// {1, 2, 3}. Types the user never classified default to 1.
type RiskLevels map[string]int

// Level returns the level assigned to the investment type, defaulting to 1.
func (l RiskLevels) Level(investmentType string) int {
	if lvl, ok := l[TypeKey(investmentType)]; ok && lvl >= 1 && lvl <= 3 {
		return lvl
	}
	return 1
}

// Assign sets the level for a type, clamping to the {1, 2, 3} scale.
func (l RiskLevels) Assign(investmentType string, level int) {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	l[TypeKey(investmentType)] = level
}

// RiskClass is the portfolio-wide classification band.
type RiskClass string

const (
	Conservative RiskClass = "Conservative"
	Balanced     RiskClass = "Balanced"
	Aggressive   RiskClass = "Aggressive"
)

// Classify maps a ponderation score to its band. Bands are closed and
// non-overlapping: up to 100 conservative, 101 to 200 balanced, beyond
// aggressive.
func Classify(ponderation float64) RiskClass {
	switch {
	case ponderation <= 100:
		return Conservative
	case ponderation <= 200:
		return Balanced
	default:
		return Aggressive
	}
}

// Ponderation is the weighted risk score: sum over types of
// level * percentage_of_capital. With every type at level 1 the score is
// 100, with every type at level 3 it is 300.
func Ponderation(rows []InvestmentRow, levels RiskLevels) float64 {
	score := 0.0
	for typ, share := range TypeShares(rows) {
		score += float64(levels.Level(typ)) * float64(share)
	}
	return score
}

// RiskFlag marks an allocation worth the user's attention.
type RiskFlag struct {
	Type  string
	Share Percent
	// Kind is "concentration" for a type above half the capital, or
	// "low-allocation" for a sliver below 5%.
	Kind string
}

const (
	concentrationThreshold = Percent(50)
	lowAllocationThreshold = Percent(5)
)

// ConcentrationFlags scans the type shares for over-concentration and
// token allocations. Flags come out sorted by type for stable rendering.
func ConcentrationFlags(rows []InvestmentRow) []RiskFlag {
	shares := TypeShares(rows)
	types := make([]string, 0, len(shares))
	for typ := range shares {
		types = append(types, typ)
	}
	sort.Strings(types)

	var flags []RiskFlag
	for _, typ := range types {
		share := shares[typ]
		switch {
		case share > concentrationThreshold:
			flags = append(flags, RiskFlag{Type: typ, Share: share, Kind: "concentration"})
		case share > 0 && share < lowAllocationThreshold:
			flags = append(flags, RiskFlag{Type: typ, Share: share, Kind: "low-allocation"})
		}
	}
	return flags
}

// RiskReport is the full risk assessment of a portfolio.
type RiskReport struct {
	Ponderation     float64
	Class           RiskClass
	Diversification float64
	Shares          map[string]Percent
	Flags           []RiskFlag
}

// ComputeRiskReport scores the portfolio against the user's risk levels.
func ComputeRiskReport(rows []InvestmentRow, levels RiskLevels) RiskReport {
	p := Ponderation(rows, levels)
	return RiskReport{
		Ponderation:     p,
		Class:           Classify(p),
		Diversification: DiversificationIndex(rows),
		Shares:          TypeShares(rows),
		Flags:           ConcentrationFlags(rows),
	}
}
