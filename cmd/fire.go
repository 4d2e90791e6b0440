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

type fireCmd struct {
	rate float64
}

func (*fireCmd) Name() string     { return "fire" }
func (*fireCmd) Synopsis() string { return "show the financial independence plan" }
func (*fireCmd) Usage() string {
	return `apf fire [-rate <annual %>]

  Shows the independence number at the given withdrawal rate and the years
  to reach it. Without a rate, uses the configured one, and failing that the
  portfolio's own annualized rate.
`
}

func (c *fireCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.rate, "rate", 0, "Annual withdrawal rate in percent.")
}

func (c *fireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, _, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	rate := portfolio.Percent(c.rate)
	if rate == 0 {
		rate = loadConfig().WithdrawalRate
	}
	plan := portfolio.ComputeFirePlan(snap, rate)
	printMarkdown(renderer.FireMarkdown(&plan))
	return subcommands.ExitSuccess
}
