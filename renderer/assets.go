package renderer

import (
	"bytes"
	"fmt"
	"math"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown evaluates and renders the physical asset inventory.
func AssetsMarkdown(on date.Date, assets []portfolio.PhysicalAsset, horizonYears int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Physical Assets on %s", on))

	if len(assets) == 0 {
		doc.PlainText("No physical assets recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Category", "Gross Yield", "Net Annual Profit", "Payback", "ROI"},
	}
	total := portfolio.COP(0)
	for _, a := range assets {
		ev := a.Evaluate(on, horizonYears)
		total = total.Add(a.CurrentValue)
		table.Rows = append(table.Rows, []string{
			a.Description,
			string(a.Category),
			ev.GrossYield.String(),
			ev.NetAnnualProfit.String(),
			paybackString(ev.PaybackYears),
			ev.CumulativeROI.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total current value: %s", md.Bold(total.String())))

	doc.H2("Verdicts")
	var verdicts []string
	for _, a := range assets {
		ev := a.Evaluate(on, horizonYears)
		verdicts = append(verdicts, fmt.Sprintf("%s: %s", a.Description, ev.Recommendation))
	}
	doc.OrderedList(verdicts...)

	return doc.String()
}

func paybackString(years float64) string {
	if math.IsInf(years, 1) {
		return "never"
	}
	return fmt.Sprintf("%.1f years", years)
}
