package portafolio

import (
	"testing"

	"github.com/Keiner111/Analsis-de-portafolio/date"
)

func TestCapitalHistoryAppendSorts(t *testing.T) {
	var h CapitalHistory
	h.Append(CapitalRecord{Date: date.MustParse("2025-03-01"), CapitalCOP: COP(12_000_000)})
	h.Append(CapitalRecord{Date: date.MustParse("2025-01-01"), CapitalCOP: COP(10_000_000)})
	h.Append(CapitalRecord{Date: date.MustParse("2025-02-01"), CapitalCOP: COP(11_000_000)})

	if len(h.Records) != 3 {
		t.Fatalf("len = %d, want 3", len(h.Records))
	}
	for i := 1; i < len(h.Records); i++ {
		if !h.Records[i-1].Date.Before(h.Records[i].Date) {
			t.Errorf("records out of order at %d: %v then %v", i, h.Records[i-1].Date, h.Records[i].Date)
		}
	}
	last, ok := h.Latest()
	if !ok || !last.CapitalCOP.Equal(COP(12_000_000)) {
		t.Errorf("Latest() = %+v, %v; want the march record", last, ok)
	}
}

func TestTrendOnLinearSeries(t *testing.T) {
	// perfectly linear growth: 100_000 pesos a day
	var h CapitalHistory
	start := date.MustParse("2025-01-01")
	for day := 0; day <= 30; day += 10 {
		h.Append(CapitalRecord{Date: start.Add(day), CapitalCOP: COP(10_000_000 + 100_000*day)})
	}
	slope, intercept, ok := h.Trend()
	if !ok {
		t.Fatal("Trend() not ok on a 4 point series")
	}
	approx(t, "slope", slope, 100_000, 1e-3)
	approx(t, "intercept", intercept, 10_000_000, 1)

	// projecting one month ahead continues the line
	projected := h.Project(1)
	wantDay := float64(start.Add(30).AddMonths(1).DaysSince(start))
	approx(t, "Project(1)", projected.AsFloat(), 10_000_000+100_000*wantDay, 1)
}

func TestTrendNeedsTwoPoints(t *testing.T) {
	var h CapitalHistory
	if _, _, ok := h.Trend(); ok {
		t.Error("Trend() on empty history should not be ok")
	}
	h.Append(CapitalRecord{Date: date.Today(), CapitalCOP: COP(5_000_000)})
	if _, _, ok := h.Trend(); ok {
		t.Error("Trend() on a single record should not be ok")
	}
	// projection degrades to the last known value
	if got := h.Project(6); !got.Equal(COP(5_000_000)) {
		t.Errorf("Project() without a trend = %v, want the last capital", got)
	}
}

func TestMonthlyGrowth(t *testing.T) {
	var h CapitalHistory
	start := date.MustParse("2025-01-01")
	h.Append(CapitalRecord{Date: start, CapitalCOP: COP(10_000_000)})
	h.Append(CapitalRecord{Date: start.Add(30), CapitalCOP: COP(10_300_000)})
	// 300_000 over 30 days on ~10.3M: just under 3% a month
	got := float64(h.MonthlyGrowth())
	approx(t, "MonthlyGrowth", got, 300_000.0/10_300_000*100, 1e-6)
}
