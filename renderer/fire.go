package renderer

import (
	"bytes"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// FireMarkdown renders the financial independence plan.
func FireMarkdown(p *portfolio.FirePlan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Independence")

	if !p.Viable {
		doc.PlainText(fmt.Sprintf("The plan is not viable at a %s withdrawal rate.", p.WithdrawalRate))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("At a %s withdrawal rate the independence number is %s.",
		p.WithdrawalRate, md.Bold(p.Target.String())))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Model", "Time to Target"},
		Rows: [][]string{
			{"Simple interest", p.HorizonString()},
			{"Compounding", p.Compound.String()},
		},
	})

	return doc.String()
}
