package portafolio

import "math"

// ProjectionParams drive the month-by-month inflation projection.
type ProjectionParams struct {
	Capital         float64
	MonthlyIncome   float64
	AnnualInflation Percent
	MonthlyGrowth   Percent
	// Reinvestment is the fraction of the monthly income added back to
	// capital each month, in [0, 1].
	Reinvestment float64
	Months       int
}

// monthlyInflation converts the annual inflation rate to its flat monthly
// equivalent, annual/12. The projection deflates with the flat rate, not the
// geometric one, and every series consumes this conversion.
func monthlyInflation(annual Percent) float64 {
	return annual.Fraction() / 12
}

// ErosionSeries is the no-investment baseline: capital deflated month after
// month, value[m] = value[m-1] / (1 + monthly inflation). The series has
// months+1 entries, value[0] being the starting capital.
func ErosionSeries(capital float64, annualInflation Percent, months int) []float64 {
	infl := monthlyInflation(annualInflation)
	series := make([]float64, months+1)
	series[0] = capital
	for m := 1; m <= months; m++ {
		series[m] = series[m-1] / (1 + infl)
	}
	return series
}

// ReinvestmentSeries projects real capital when a fraction of the income is
// reinvested every month. Each step, in this exact order: deflate the
// month's income to real terms, add the reinvested share, grow the capital
// one month, deflate the capital one month. The ordering determines how
// contribution timing compounds against inflation, so it must not change.
func ReinvestmentSeries(p ProjectionParams, growthMonthly float64) []float64 {
	infl := monthlyInflation(p.AnnualInflation)
	series := make([]float64, p.Months+1)
	series[0] = p.Capital
	value := p.Capital
	for m := 1; m <= p.Months; m++ {
		incomeReal := p.MonthlyIncome * math.Pow(1+infl, -float64(m))
		value += incomeReal * p.Reinvestment
		value *= 1 + growthMonthly
		value /= 1 + infl
		series[m] = value
	}
	return series
}

// ScenarioSet holds the three growth scenarios plus the erosion baseline,
// all series of identical length Months+1.
type ScenarioSet struct {
	Erosion      []float64
	Conservative []float64
	Base         []float64
	Optimistic   []float64
}

// scenario multipliers applied to the base monthly growth rate.
const (
	conservativeFactor = 0.7
	optimisticFactor   = 1.3
)

// ComputeScenarios runs the same recurrence at 0.7x, 1.0x and 1.3x the base
// monthly growth rate.
func ComputeScenarios(p ProjectionParams) ScenarioSet {
	growth := p.MonthlyGrowth.Fraction()
	return ScenarioSet{
		Erosion:      ErosionSeries(p.Capital, p.AnnualInflation, p.Months),
		Conservative: ReinvestmentSeries(p, growth*conservativeFactor),
		Base:         ReinvestmentSeries(p, growth),
		Optimistic:   ReinvestmentSeries(p, growth*optimisticFactor),
	}
}

// RealAnnualReturn is the inflation-adjusted annual return:
// (1 + nominal) / (1 + inflation) - 1.
func RealAnnualReturn(nominal, inflation Percent) Percent {
	real := (1+nominal.Fraction())/(1+inflation.Fraction()) - 1
	return Percent(real * 100)
}
