package renderer

import (
	"bytes"
	"fmt"
	"sort"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the snapshot figures and the allocation by type.
func SummaryMarkdown(s portfolio.Snapshot, shares map[string]portfolio.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.On))
	doc.PlainText(fmt.Sprintf("Total Capital: %s", s.TotalCapital))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Figure", "Value"},
		Rows: [][]string{
			{"Productive Capital", s.ProductiveCapital.String()},
			{"Monthly Income", s.MonthlyIncome.String()},
			{"Annual Income", s.AnnualIncome.String()},
			{"Annualized Rate", s.AnnualizedRate.String()},
			{"Diversification", fmt.Sprintf("%.3f", s.Diversification)},
		},
	})

	if len(shares) > 0 {
		doc.H2("Allocation")
		types := make([]string, 0, len(shares))
		for typ := range shares {
			types = append(types, typ)
		}
		sort.Strings(types)

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Type", "Share"},
		}
		for _, typ := range types {
			table.Rows = append(table.Rows, []string{typ, shares[typ].String()})
		}
		doc.Table(table)
	}

	return doc.String()
}
