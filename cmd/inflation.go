package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/renderer"
	"github.com/google/subcommands"
)

type inflationCmd struct {
	months    int
	inflation float64
	reinvest  float64
}

func (*inflationCmd) Name() string     { return "inflation" }
func (*inflationCmd) Synopsis() string { return "project the real value of the capital" }
func (*inflationCmd) Usage() string {
	return `apf inflation [-months <n>] [-inflation <annual %>] [-reinvest <0..1>]

  Projects the capital in real terms: the erosion baseline against three
  reinvestment scenarios at 0.7x, 1x and 1.3x the portfolio's monthly rate.
`
}

func (c *inflationCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 120, "Projection length in months.")
	f.Float64Var(&c.inflation, "inflation", 0, "Annual inflation in percent. Defaults to the configured assumption.")
	f.Float64Var(&c.reinvest, "reinvest", 1, "Fraction of the monthly income reinvested, 0 to 1.")
}

func (c *inflationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, _, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	inflation := portfolio.Percent(c.inflation)
	if inflation == 0 {
		inflation = loadConfig().AnnualInflation
	}

	params := portfolio.ProjectionParams{
		Capital:         snap.TotalCapital.AsFloat(),
		MonthlyIncome:   snap.MonthlyIncome.AsFloat(),
		AnnualInflation: inflation,
		MonthlyGrowth:   snap.AnnualizedRate.Monthly(),
		Reinvestment:    c.reinvest,
		Months:          c.months,
	}
	printMarkdown(renderer.InflationMarkdown(params, portfolio.ComputeScenarios(params)))

	real := portfolio.RealAnnualReturn(snap.AnnualizedRate, inflation)
	fmt.Printf("Real annual return: %s\n", real.SignedString())
	return subcommands.ExitSuccess
}
