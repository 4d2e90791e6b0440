package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/google/subcommands"
)

// importCmd loads a portfolio CSV into the store.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a portfolio CSV into the store" }
func (*importCmd) Usage() string {
	return `apf import <file.csv>

  Reads the portfolio table from a CSV export and stores it as the current
  portfolio. Columns: Items, Personas, Dinero, Tipo de inversion,
  Interes Mensual. Amount columns accept both "$1.234.567" and "1,234,567.89".
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import needs exactly one CSV file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	rows, err := portfolio.ReadRows(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := openStore().SaveRows(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d rows into %s\n", len(rows), *storagePath)
	return subcommands.ExitSuccess
}
