package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// LoanMarkdown renders the amortization plan and the lending verdict for a
// scenario. The schedule is shown in full: loan terms are short enough that
// sampling would hide the shape of the decreasing modality.
func LoanMarkdown(s portfolio.LoanScenario, plan portfolio.AmortizationSchedule, expectedValue, breakEven float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Loan of %s over %d months (%s)", portfolio.COP(s.Principal), s.TermMonths, s.Modality))
	doc.PlainText(fmt.Sprintf("Monthly rate %s, effective annual cost %s.", s.MonthlyRate, s.EffectiveAnnualCost()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Installment", "Interest", "Principal", "Balance"},
	}
	for _, p := range plan {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", p.Month),
			portfolio.COP(p.Installment).String(),
			portfolio.COP(p.Interest).String(),
			portfolio.COP(p.Principal).String(),
			portfolio.COP(p.Balance).String(),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(portfolio.COP(plan.TotalPaid()).String()),
		md.Bold(portfolio.COP(plan.TotalInterest()).String()),
		"",
		"",
	})
	doc.Table(table)

	doc.H2("Lending Verdict")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Figure", "Value"},
		Rows: [][]string{
			{"Risk-adjusted expected value", portfolio.COP(expectedValue).SignedString()},
			{"Break-even installment", portfolio.COP(breakEven).String()},
		},
	})

	return doc.String()
}
