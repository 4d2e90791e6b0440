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

// goalCmd shows the goal projections, updating the persisted parameters
// first when any flag is set.
type goalCmd struct {
	target  float64
	monthly float64
	income  float64
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show or update the saving goal" }
func (*goalCmd) Usage() string {
	return `apf goal [-target <pesos>] [-monthly <pesos>] [-income <pesos>]

  Shows the time to reach the target capital, with and without compounding,
  and the monthly rate needed for the target passive income. Flags update
  the persisted parameters before the projection runs.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "target", 0, "Target capital in pesos.")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly contribution in pesos.")
	f.Float64Var(&c.income, "income", 0, "Target passive income in pesos a month.")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	params, err := store.Goal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading goal: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.target > 0 {
		params.TargetCapital = portfolio.COP(c.target)
		changed = true
	}
	if c.monthly > 0 {
		params.MonthlyContribution = portfolio.COP(c.monthly)
		changed = true
	}
	if c.income > 0 {
		params.TargetMonthlyIncome = portfolio.COP(c.income)
		changed = true
	}
	if changed {
		if err := store.SaveGoal(params); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving goal: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	snap, _, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	report := portfolio.ComputeGoalReport(snap, params)
	printMarkdown(renderer.GoalMarkdown(&report))
	return subcommands.ExitSuccess
}
