// Package cmd implements the CLI application to analyse a personal
// portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&importCmd{},
	&summaryCmd{},
	&goalCmd{},
	&fireCmd{},
	&inflationCmd{},
	&loanCmd{},
	&riskCmd{},
	&ratesCmd{},
	&balanceCmd{},
	&expenseCmd{},
	&assetsCmd{},
	&historyCmd{},
	&serveCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var storagePath = flag.String("storage", ".portafolio", "Path to the folder holding the portfolio data files")

// openStore returns the store rooted at the -storage folder.
func openStore() *portfolio.Store { return portfolio.NewStore(*storagePath) }

// loadConfig reads the optional config.yaml from the store folder. A broken
// file is reported but the defaults stand.
func loadConfig() portfolio.Config {
	cfg, err := portfolio.LoadConfig(*storagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return cfg
}

// loadSnapshot reads the portfolio table and computes today's snapshot.
func loadSnapshot() (portfolio.Snapshot, []portfolio.InvestmentRow, error) {
	rows, err := openStore().Rows()
	if err != nil {
		return portfolio.Snapshot{}, nil, err
	}
	return portfolio.ComputeSnapshot(date.Today(), rows), rows, nil
}
