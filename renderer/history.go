package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the capital history series and its fitted trend.
func HistoryMarkdown(h *portfolio.CapitalHistory) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Capital History")

	if len(h.Records) == 0 {
		doc.PlainText("No readings recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Capital COP", "Capital USD", "Rate"},
	}
	for _, r := range h.Records {
		table.Rows = append(table.Rows, []string{
			r.Date.String(),
			r.CapitalCOP.String(),
			r.CapitalUSD.String(),
			fmt.Sprintf("%.2f", r.RateCOP),
		})
	}
	doc.Table(table)

	if growth := h.MonthlyGrowth(); growth != 0 {
		doc.H2("Trend")
		doc.PlainText(fmt.Sprintf("Observed growth %s per month. At this pace the capital reaches %s in a year.",
			growth.SignedString(), h.Project(12)))
	}

	return doc.String()
}
