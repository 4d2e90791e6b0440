package portafolio

import (
	"fmt"
	"math"

	"github.com/Keiner111/Analsis-de-portafolio/date"
)

// AssetCategory classifies a physical investment. Each category carries its
// own recommendation thresholds.
type AssetCategory string

const (
	Crop           AssetCategory = "crop"
	Livestock      AssetCategory = "livestock"
	RealEstate     AssetCategory = "real-estate"
	Infrastructure AssetCategory = "infrastructure"
	Machinery      AssetCategory = "machinery"
	OtherAsset     AssetCategory = "other"
)

// ParseAssetCategory parses a string into an AssetCategory.
func ParseAssetCategory(s string) (AssetCategory, error) {
	switch AssetCategory(s) {
	case Crop, Livestock, RealEstate, Infrastructure, Machinery, OtherAsset:
		return AssetCategory(s), nil
	default:
		return "", fmt.Errorf("unknown asset category: %q", s)
	}
}

// PhysicalAsset is one non-financial investment: land, cattle, property,
// machines. Only the raw inputs are persisted; every derived figure is
// recomputed on evaluation.
type PhysicalAsset struct {
	ID              string        `json:"id"`
	Category        AssetCategory `json:"tipo"`
	Description     string        `json:"descripcion"`
	Location        string        `json:"ubicacion,omitempty"`
	AcquisitionCost Money         `json:"valor_adquisicion"`
	CurrentValue    Money         `json:"valor_actual"`
	AcquiredOn      date.Date     `json:"fecha_adquisicion"`
	UsefulLifeYears int           `json:"vida_util"`
	AnnualIncome    Money         `json:"ingreso_anual"`
	MonthlyCosts    Money         `json:"costos_mensuales"`
}

// AssetEvaluation carries the derived figures of one asset over a planning
// horizon.
type AssetEvaluation struct {
	// GrossYield is annual income over acquisition cost, in percent.
	GrossYield Percent
	// NetAnnualProfit is annual income minus a year of costs.
	NetAnnualProfit Money
	// CostBenefitRatio is annual income over annual costs, +Inf with no
	// costs.
	CostBenefitRatio float64
	// CumulativeROI is the net profit over the horizon as a percent of the
	// acquisition cost.
	CumulativeROI Percent
	// PaybackYears is acquisition cost over net annual profit, +Inf when
	// the asset loses money.
	PaybackYears float64
	// Depreciation is the straight-line depreciation accrued since
	// acquisition, capped at the acquisition cost.
	Depreciation Money
	// Recommendation is the category-specific verdict.
	Recommendation string
}

// Evaluate derives the asset's figures over a horizon of the given number
// of years, as of the given day.
func (a PhysicalAsset) Evaluate(on date.Date, horizonYears int) AssetEvaluation {
	cost := a.AcquisitionCost.AsFloat()
	income := a.AnnualIncome.AsFloat()
	annualCosts := a.MonthlyCosts.AsFloat() * 12
	netAnnual := income - annualCosts

	ev := AssetEvaluation{
		NetAnnualProfit:  COP(netAnnual),
		CostBenefitRatio: math.Inf(1),
		PaybackYears:     math.Inf(1),
		Depreciation:     a.straightLineDepreciation(on),
	}
	if cost > 0 {
		ev.GrossYield = Percent(income / cost * 100)
		ev.CumulativeROI = Percent(netAnnual * float64(horizonYears) / cost * 100)
	}
	if annualCosts > 0 {
		ev.CostBenefitRatio = income / annualCosts
	}
	if netAnnual > 0 && cost > 0 {
		ev.PaybackYears = cost / netAnnual
	}
	ev.Recommendation = recommend(a.Category, ev)
	return ev
}

// straightLineDepreciation spreads the acquisition cost evenly over the
// useful life, accrued by elapsed years.
func (a PhysicalAsset) straightLineDepreciation(on date.Date) Money {
	if a.UsefulLifeYears <= 0 || a.AcquiredOn.IsZero() {
		return COP(0)
	}
	elapsed := float64(on.DaysSince(a.AcquiredOn)) / 365.25
	if elapsed <= 0 {
		return COP(0)
	}
	annual := a.AcquisitionCost.AsFloat() / float64(a.UsefulLifeYears)
	accrued := annual * elapsed
	if accrued > a.AcquisitionCost.AsFloat() {
		return a.AcquisitionCost
	}
	return COP(accrued)
}

// recommend applies the per-category verdict thresholds on the cumulative
// ROI, the cost/benefit ratio and the payback period.
func recommend(cat AssetCategory, ev AssetEvaluation) string {
	roi := float64(ev.CumulativeROI)
	switch cat {
	case Crop:
		switch {
		case roi >= 40 && ev.GrossYield >= 10:
			return "highly profitable crop"
		case roi >= 25:
			return "moderate profitability, consider optimizations"
		default:
			return "low profitability, evaluate switching crop or technique"
		}
	case Livestock:
		switch {
		case roi >= 36 && ev.CostBenefitRatio >= 2:
			return "profitable herd with good cost control"
		case roi >= 20:
			return "average profitability, review herd management"
		default:
			return "high risk, reconsider herd scale or management"
		}
	case RealEstate:
		switch {
		case ev.PaybackYears <= 10 && roi >= 25:
			return "excellent rental property"
		case roi >= 10:
			return "low but stable return, weigh appreciation"
		default:
			return "very slow return, not recommended without appreciation"
		}
	case Infrastructure:
		switch {
		case roi >= 30:
			return "efficient infrastructure with good return"
		case roi >= 15:
			return "moderate return, possibly underused"
		default:
			return "investment not recovering, review usage and upkeep"
		}
	case Machinery:
		switch {
		case ev.CostBenefitRatio >= 2 && ev.PaybackYears <= 5:
			return "highly efficient machinery"
		case roi >= 15:
			return "useful but costly, optimize usage"
		default:
			return "underused, consider selling or renting out"
		}
	default:
		switch {
		case roi >= 30:
			return "good alternative investment"
		case roi >= 10:
			return "acceptable return"
		default:
			return "insufficient return"
		}
	}
}
