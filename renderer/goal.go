package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// GoalMarkdown renders the saving goal projections.
func GoalMarkdown(r *portfolio.GoalReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Saving Goal")
	doc.PlainText(fmt.Sprintf("Target %s, current capital %s, contributing %s a month.",
		r.Params.TargetCapital, r.Current, r.Params.MonthlyContribution))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Model", "Time to Target"},
		Rows: [][]string{
			{"Contributions only", r.Linear.String()},
			{"Contributions + compounding", r.Compound.String()},
		},
	})

	doc.H2("Target Income")
	doc.PlainText(fmt.Sprintf("A passive income of %s a month needs a %s monthly rate on the productive capital. The portfolio currently yields %s.",
		r.Params.TargetMonthlyIncome, r.RequiredRate, r.CurrentRate))

	return doc.String()
}
