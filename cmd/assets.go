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

// assetsCmd evaluates the physical assets and edits the registry.
type assetsCmd struct {
	horizon  int
	add      string
	category string
	cost     float64
	value    float64
	income   float64
	costs    float64
	life     int
	acquired string
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "evaluate the physical assets" }
func (*assetsCmd) Usage() string {
	return `apf assets [-horizon <years>] [-add <description> -category <c> -cost <pesos> ...]

  Evaluates land, cattle, property and machinery: yield, payback,
  depreciation and a per-category verdict. Categories: crop, livestock,
  real-estate, infrastructure, machinery, other.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.horizon, "horizon", 5, "Planning horizon in years.")
	f.StringVar(&c.add, "add", "", "Register an asset with this description.")
	f.StringVar(&c.category, "category", "other", "Category of the added asset.")
	f.Float64Var(&c.cost, "cost", 0, "Acquisition cost in pesos.")
	f.Float64Var(&c.value, "value", 0, "Current value in pesos. Defaults to the cost.")
	f.Float64Var(&c.income, "income", 0, "Annual income in pesos.")
	f.Float64Var(&c.costs, "costs", 0, "Monthly costs in pesos.")
	f.IntVar(&c.life, "life", 0, "Useful life in years, for depreciation.")
	f.StringVar(&c.acquired, "acquired", "", "Acquisition date, yyyy-mm-dd. Defaults to today.")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	assets, err := store.Assets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add != "" {
		category, err := portfolio.ParseAssetCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		acquired := date.Today()
		if c.acquired != "" {
			acquired, err = date.Parse(c.acquired)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		value := c.value
		if value == 0 {
			value = c.cost
		}
		assets = append(assets, portfolio.PhysicalAsset{
			Category:        category,
			Description:     c.add,
			AcquisitionCost: portfolio.COP(c.cost),
			CurrentValue:    portfolio.COP(value),
			AcquiredOn:      acquired,
			UsefulLifeYears: c.life,
			AnnualIncome:    portfolio.COP(c.income),
			MonthlyCosts:    portfolio.COP(c.costs),
		})
		if err := store.SaveAssets(assets); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving assets: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.AssetsMarkdown(date.Today(), assets, c.horizon))
	return subcommands.ExitSuccess
}
