package renderer

import (
	"bytes"
	"fmt"
	"sort"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	md "github.com/nao1215/markdown"
)

// RiskMarkdown renders the risk assessment.
func RiskMarkdown(r *portfolio.RiskReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Risk Assessment")
	doc.PlainText(fmt.Sprintf("Ponderation %.1f, classified %s. Diversification %.3f.",
		r.Ponderation, md.Bold(string(r.Class)), r.Diversification))

	if len(r.Shares) > 0 {
		doc.H2("Allocation")
		types := make([]string, 0, len(r.Shares))
		for typ := range r.Shares {
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
			table.Rows = append(table.Rows, []string{typ, r.Shares[typ].String()})
		}
		doc.Table(table)
	}

	if len(r.Flags) > 0 {
		doc.H2("Flags")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Type", "Share", "Flag"},
		}
		for _, f := range r.Flags {
			table.Rows = append(table.Rows, []string{f.Type, f.Share.String(), f.Kind})
		}
		doc.Table(table)
	}

	return doc.String()
}
