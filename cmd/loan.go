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

type loanCmd struct {
	principal float64
	rate      float64
	term      int
	modality  string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "evaluate a lending scenario" }
func (*loanCmd) Usage() string {
	return `apf loan -principal <pesos> -rate <monthly %> -term <months> [-modality fixed|decreasing|bullet]

  Prints the amortization table, the effective annual cost, the
  risk-adjusted expected value of lending, and the break-even installment
  against keeping the money invested at the portfolio's rate.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Principal in pesos.")
	f.Float64Var(&c.rate, "rate", 0, "Monthly rate in percent.")
	f.IntVar(&c.term, "term", 0, "Term in months.")
	f.StringVar(&c.modality, "modality", "fixed", "Payment modality: fixed, decreasing or bullet.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	modality, err := portfolio.ParseModality(c.modality)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	scenario := portfolio.LoanScenario{
		Principal:   c.principal,
		MonthlyRate: portfolio.Percent(c.rate),
		TermMonths:  c.term,
		Modality:    modality,
	}
	plan, err := scenario.Schedule()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	snap, _, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg := loadConfig()
	ev := scenario.ExpectedValue(cfg.Risk)
	breakEven := scenario.BreakEvenInstallment(snap.AnnualizedRate)

	printMarkdown(renderer.LoanMarkdown(scenario, plan, ev, breakEven))
	return subcommands.ExitSuccess
}
