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

// balanceCmd shows the net worth statement and edits the liability list.
type balanceCmd struct {
	add    string
	value  float64
	rate   float64
	remove string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show net worth and manage liabilities" }
func (*balanceCmd) Usage() string {
	return `apf balance [-add <description> -value <pesos> [-rate <annual %>]] [-remove <id>]

  Nets the portfolio against the liabilities: net worth, debt ratio,
  weighted debt rate and the monthly cost of the debt against the passive
  income.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Add a liability with this description.")
	f.Float64Var(&c.value, "value", 0, "Value of the added liability in pesos.")
	f.Float64Var(&c.rate, "rate", 0, "Annual rate of the added liability in percent.")
	f.StringVar(&c.remove, "remove", "", "Remove the liability with this id.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	if c.add != "" {
		liabilities, err := store.Liabilities()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading liabilities: %v\n", err)
			return subcommands.ExitFailure
		}
		record := portfolio.NewLiability(c.add, portfolio.COP(c.value), portfolio.Percent(c.rate))
		liabilities = append(liabilities, record)
		if err := store.SaveLiabilities(liabilities); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving liabilities: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added liability %s\n", record.ID)
	}
	if c.remove != "" {
		if err := store.DeleteLiability(c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Removed liability %s\n", c.remove)
	}

	snap, _, err := loadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	liabilities, err := store.Liabilities()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading liabilities: %v\n", err)
		return subcommands.ExitFailure
	}
	sheet := portfolio.ComputeBalanceSheet(snap, liabilities)
	printMarkdown(renderer.BalanceMarkdown(&sheet, liabilities))
	return subcommands.ExitSuccess
}
