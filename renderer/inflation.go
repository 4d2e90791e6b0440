package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// InflationMarkdown renders the erosion baseline against the three
// reinvestment scenarios, sampled yearly.
func InflationMarkdown(p portfolio.ProjectionParams, set portfolio.ScenarioSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inflation Projection")
	doc.PlainText(fmt.Sprintf("Real value of %s over %d months at %s annual inflation, reinvesting %.0f%% of the income.",
		portfolio.COP(p.Capital), p.Months, p.AnnualInflation, p.Reinvestment*100))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "No Investment", "Conservative", "Base", "Optimistic"},
	}
	for m := 0; m <= p.Months; m += 12 {
		table.Rows = append(table.Rows, scenarioRow(m, set))
	}
	if p.Months%12 != 0 {
		table.Rows = append(table.Rows, scenarioRow(p.Months, set))
	}
	doc.Table(table)

	return doc.String()
}

func scenarioRow(m int, set portfolio.ScenarioSet) []string {
	return []string{
		fmt.Sprintf("%d", m),
		portfolio.COP(set.Erosion[m]).String(),
		portfolio.COP(set.Conservative[m]).String(),
		portfolio.COP(set.Base[m]).String(),
		portfolio.COP(set.Optimistic[m]).String(),
	}
}
