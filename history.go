package portafolio

import (
	"sort"

	"github.com/Keiner111/Analsis-de-portafolio/date"
)

// CapitalRecord is one daily reading of the portfolio's worth, in pesos and
// dollars, with the exchange rate used for the conversion.
type CapitalRecord struct {
	Date       date.Date `json:"fecha"`
	CapitalCOP Money     `json:"capital_cop"`
	CapitalUSD Money     `json:"capital_usd"`
	RateCOP    float64   `json:"tasa_cop"`
}

// CapitalHistory is the ordered daily series, at most one record per
// calendar day.
type CapitalHistory struct {
	Records []CapitalRecord `json:"registros"`
}

// Append records a reading. A second reading the same day overwrites the
// first, the series stays sorted by date.
func (h *CapitalHistory) Append(r CapitalRecord) {
	for i, existing := range h.Records {
		if existing.Date == r.Date {
			h.Records[i] = r
			return
		}
	}
	h.Records = append(h.Records, r)
	sort.Slice(h.Records, func(i, j int) bool {
		return h.Records[i].Date.Before(h.Records[j].Date)
	})
}

// Latest returns the most recent record, ok=false on an empty history.
func (h CapitalHistory) Latest() (CapitalRecord, bool) {
	if len(h.Records) == 0 {
		return CapitalRecord{}, false
	}
	return h.Records[len(h.Records)-1], true
}

// Trend fits capital = intercept + slope * day by least squares over the
// whole series, day 0 being the first record. It needs at least two points,
// ok=false otherwise.
func (h CapitalHistory) Trend() (slopePerDay, intercept float64, ok bool) {
	n := len(h.Records)
	if n < 2 {
		return 0, 0, false
	}
	origin := h.Records[0].Date
	var sumX, sumY, sumXY, sumXX float64
	for _, r := range h.Records {
		x := float64(r.Date.DaysSince(origin))
		y := r.CapitalCOP.AsFloat()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, false
	}
	slopePerDay = (fn*sumXY - sumX*sumY) / denom
	intercept = (sumY - slopePerDay*sumX) / fn
	return slopePerDay, intercept, true
}

// Project extrapolates the fitted trend the given number of months past the
// last record. Without a trend it returns the last known capital.
func (h CapitalHistory) Project(months int) Money {
	last, ok := h.Latest()
	if !ok {
		return COP(0)
	}
	slope, intercept, ok := h.Trend()
	if !ok {
		return last.CapitalCOP
	}
	origin := h.Records[0].Date
	day := float64(last.Date.AddMonths(months).DaysSince(origin))
	return COP(intercept + slope*day)
}

// MonthlyGrowth returns the average observed capital change per 30 days, as
// a percent of the latest capital, 0 without a trend.
func (h CapitalHistory) MonthlyGrowth() Percent {
	last, ok := h.Latest()
	if !ok || !last.CapitalCOP.IsPositive() {
		return 0
	}
	slope, _, ok := h.Trend()
	if !ok {
		return 0
	}
	return Percent(slope * 30 / last.CapitalCOP.AsFloat() * 100)
}
