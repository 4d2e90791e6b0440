package renderer

import (
	"bytes"
	"fmt"
	"time"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// ExpensesMarkdown renders one month of the expense ledger against its
// budgets.
func ExpensesMarkdown(year int, month int, totals []portfolio.CategoryTotal, balance portfolio.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Expenses for %s %d", time.Month(month), year))

	if len(totals) == 0 {
		doc.PlainText("No expenses recorded this month.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Category", "Spent", "Budget", "Variance"},
		}
		for _, t := range totals {
			table.Rows = append(table.Rows, []string{
				t.Category,
				t.Spent.String(),
				t.Budget.String(),
				t.Variance.SignedString(),
			})
		}
		doc.Table(table)
	}

	doc.PlainText(fmt.Sprintf("Ledger balance to date: %s", balance.SignedString()))

	return doc.String()
}
