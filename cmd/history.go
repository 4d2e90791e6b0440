package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/Keiner111/Analsis-de-portafolio/renderer"
	"github.com/google/subcommands"
)

// historyCmd shows the capital history and optionally records today's
// reading.
type historyCmd struct {
	record bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the capital history" }
func (*historyCmd) Usage() string {
	return `apf history [-record]

  Shows the daily capital series, the observed monthly growth and the one
  year projection. With -record, appends today's reading first; a second
  recording the same day overwrites the first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.record, "record", false, "Record today's capital before showing the series.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	history, err := store.History()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.record {
		snap, _, err := loadSnapshot()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		cfg := loadConfig()
		rates, err := portfolio.NewRateProvider(cfg.ManualFallback()).Current()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		history.Append(portfolio.CapitalRecord{
			Date:       date.Today(),
			CapitalCOP: snap.TotalCapital,
			CapitalUSD: rates.ToUSD(snap.TotalCapital),
			RateCOP:    rates.USDCOP,
		})
		if err := store.SaveHistory(history); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.HistoryMarkdown(&history))
	return subcommands.ExitSuccess
}
