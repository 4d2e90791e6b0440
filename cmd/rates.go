package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/google/subcommands"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show today's USD exchange rates" }
func (*ratesCmd) Usage() string {
	return `apf rates

  Fetches the USD/COP and USD/EUR rates. When the fetch fails, the manual
  rates from the configuration stand in and are flagged as such.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := loadConfig()
	provider := portfolio.NewRateProvider(cfg.ManualFallback())
	rates, err := provider.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	source := "live"
	if rates.Manual {
		source = "manual"
	}
	fmt.Printf("USD/COP %.2f\nUSD/EUR %.4f\nsource: %s\n", rates.USDCOP, rates.USDEUR, source)
	return subcommands.ExitSuccess
}
