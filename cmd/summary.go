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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	full bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `apf summary [-full]

  Displays the portfolio totals, the annualized rate and the allocation.
  With -full, includes the goal, independence, net worth and risk sections.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.full, "full", false, "Include goal, independence, net worth and risk sections.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, rows, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.full {
		printMarkdown(renderer.SummaryMarkdown(snap, portfolio.TypeShares(rows)))
		return subcommands.ExitSuccess
	}

	store := openStore()
	cfg := loadConfig()
	goal, err := store.Goal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading goal: %v\n", err)
		return subcommands.ExitFailure
	}
	liabilities, err := store.Liabilities()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading liabilities: %v\n", err)
		return subcommands.ExitFailure
	}
	levels, err := store.RiskLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading risk levels: %v\n", err)
		return subcommands.ExitFailure
	}

	g := portfolio.ComputeGoalReport(snap, goal)
	fire := portfolio.ComputeFirePlan(snap, cfg.WithdrawalRate)
	b := portfolio.ComputeBalanceSheet(snap, liabilities)
	r := portfolio.ComputeRiskReport(rows, levels)

	o := renderer.NewOverview(snap, &g, &fire, &b, &r)
	printMarkdown(renderer.RenderOverview(o))
	return subcommands.ExitSuccess
}
