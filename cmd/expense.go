package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/Keiner111/Analsis-de-portafolio/renderer"
	"github.com/google/subcommands"
)

// expenseCmd records movements and shows the monthly summary.
type expenseCmd struct {
	add      string
	amount   float64
	category string
	on       string
	budget   string
	month    string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record expenses and show the monthly summary" }
func (*expenseCmd) Usage() string {
	return `apf expense [-add <description> -amount <pesos>] [-budget <category>=<pesos>] [-month <yyyy-mm>]

  Records a movement (negative amounts are expenses, positive ones income)
  and shows the month's spending per category against the budgets. Without
  an explicit -category the description is classified by keywords.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Record a movement with this description.")
	f.Float64Var(&c.amount, "amount", 0, "Amount of the movement in pesos, negative for expenses.")
	f.StringVar(&c.category, "category", "", "Category of the movement. Defaults to keyword classification.")
	f.StringVar(&c.on, "on", "", "Date of the movement, yyyy-mm-dd. Defaults to today.")
	f.StringVar(&c.budget, "budget", "", "Set a monthly budget, e.g. Alimentacion=1000000.")
	f.StringVar(&c.month, "month", "", "Month to summarize, yyyy-mm. Defaults to the current month.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	book, err := store.Expenses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.add != "" {
		on := date.Today()
		if c.on != "" {
			on, err = date.Parse(c.on)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		entry := book.Add(on, c.add, portfolio.COP(c.amount), c.category)
		fmt.Printf("Recorded %s under %s\n", entry.Amount.SignedString(), entry.Category)
		changed = true
	}
	if c.budget != "" {
		cat, amount, ok := strings.Cut(c.budget, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: -budget wants <category>=<pesos>, got %q\n", c.budget)
			return subcommands.ExitUsageError
		}
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: budget %q is not a number\n", amount)
			return subcommands.ExitUsageError
		}
		book.Budgets[cat] = portfolio.COP(v)
		changed = true
	}
	if changed {
		if err := store.SaveExpenses(book); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving expenses: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	year, month := date.Today().Year(), int(date.Today().Month())
	if c.month != "" {
		parsed, err := date.Parse(c.month + "-01")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -month wants yyyy-mm, got %q\n", c.month)
			return subcommands.ExitUsageError
		}
		year, month = parsed.Year(), int(parsed.Month())
	}
	totals := book.MonthlySummary(year, month)
	printMarkdown(renderer.ExpensesMarkdown(year, month, totals, book.Balance()))
	return subcommands.ExitSuccess
}
