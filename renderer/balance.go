package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// BalanceMarkdown renders the net worth statement with its liability detail.
func BalanceMarkdown(b *portfolio.BalanceSheet, liabilities []portfolio.LiabilityRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Worth")
	doc.PlainText(fmt.Sprintf("Assets %s, liabilities %s: net worth %s.",
		b.TotalAssets, b.TotalLiabilities, md.Bold(b.NetWorth.String())))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Figure", "Value"},
		Rows: [][]string{
			{"Debt Ratio", b.DebtRatio.String()},
			{"Weighted Debt Rate", b.WeightedDebtRate.String()},
			{"Monthly Debt Cost", b.MonthlyDebtCost.String()},
			{"Debt Burden", string(b.Burden)},
		},
	})

	if len(liabilities) > 0 {
		doc.H2("Liabilities")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Description", "Value", "Annual Rate", "Since"},
		}
		for _, l := range liabilities {
			table.Rows = append(table.Rows, []string{
				l.Description,
				l.Value.String(),
				l.AnnualRate.String(),
				l.CreatedAt.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
