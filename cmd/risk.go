package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/renderer"
	"github.com/google/subcommands"
)

type riskCmd struct {
	set string
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "show the risk assessment" }
func (*riskCmd) Usage() string {
	return `apf risk [-set <type>=<level>]

  Shows the ponderation score, the classification and the allocation flags.
  -set assigns a risk level from 1 (conservative) to 3 (aggressive) to an
  investment type before the assessment runs.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Assign a level, e.g. cdt=2.")
}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	levels, err := store.RiskLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading risk levels: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.set != "" {
		typ, lvl, ok := strings.Cut(c.set, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: -set wants <type>=<level>, got %q\n", c.set)
			return subcommands.ExitUsageError
		}
		level, err := strconv.Atoi(lvl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: level %q is not a number\n", lvl)
			return subcommands.ExitUsageError
		}
		levels.Assign(typ, level)
		if err := store.SaveRiskLevels(levels); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving risk levels: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	rows, err := store.Rows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	report := portfolio.ComputeRiskReport(rows, levels)
	printMarkdown(renderer.RiskMarkdown(&report))
	return subcommands.ExitSuccess
}
