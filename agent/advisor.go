package agent

import (
	"context"
	"fmt"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/Keiner111/Analsis-de-portafolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You facilitate a conversation about the user's personal finances.

			The experts available through the Tools are at your service and keep
			the context of your previous questions. The Analyst knows the user's
			actual portfolio, goals, expenses and assets; always check with the
			Analyst before asserting anything about the user's numbers.

			Amounts are Colombian pesos unless the user says otherwise. Answer in
			the user's language.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounded on web search, for questions
// about rates, institutions and market news.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `An expert on financial institutions, rates and market news.
		Ask the Researcher whenever you need recent or external information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You research financial topics: Colombian banks, CDT rates, inflation
			figures, exchange rates, market news. Ground every assertion with
			search and say when a figure is an estimate.
		`}}},
		},
	}
}

// NewAnalyst creates the expert that reads the user's local store through
// function tools.
func NewAnalyst(store *portfolio.Store, cfg portfolio.Config) *Expert {
	lib := []Function{
		overviewFunc(store, cfg),
		expensesFunc(store),
		assetsFunc(store),
	}
	return &Expert{
		Name: "Analyst",
		Description: `The Analyst has access to the user's actual portfolio: the
		investment table, the saving goal, the liabilities, the risk levels, the
		expense ledger and the physical assets. Ask the Analyst anything about
		the user's own numbers.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You analyse the user's portfolio. Use the available tools to read the
			real figures before answering; never invent amounts. Reports come back
			as markdown tables, quote the relevant lines.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

// overviewFunc renders the full overview report: snapshot, goal, fire,
// balance and risk.
func overviewFunc(store *portfolio.Store, cfg portfolio.Config) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PortfolioOverview",
			Description: `The full overview of the user's portfolio as of today:
			capital, income, annualized rate, goal projections, independence
			number, net worth and risk assessment.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			rows, err := store.Rows()
			if err != nil {
				return errorResponse(id, "PortfolioOverview", err)
			}
			goal, err := store.Goal()
			if err != nil {
				return errorResponse(id, "PortfolioOverview", err)
			}
			liabilities, err := store.Liabilities()
			if err != nil {
				return errorResponse(id, "PortfolioOverview", err)
			}
			levels, err := store.RiskLevels()
			if err != nil {
				return errorResponse(id, "PortfolioOverview", err)
			}

			s := portfolio.ComputeSnapshot(date.Today(), rows)
			g := portfolio.ComputeGoalReport(s, goal)
			f := portfolio.ComputeFirePlan(s, cfg.WithdrawalRate)
			b := portfolio.ComputeBalanceSheet(s, liabilities)
			r := portfolio.ComputeRiskReport(rows, levels)
			o := renderer.NewOverview(s, &g, &f, &b, &r)
			return outputResponse(id, "PortfolioOverview", renderer.RenderOverview(o))
		},
	}
}

// expensesFunc renders one month of the expense ledger.
func expensesFunc(store *portfolio.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "MonthlyExpenses",
			Description: `The user's expenses for one calendar month, per category, against the budgets.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year":  {Type: genai.TypeInteger, Description: "The calendar year, e.g. 2025."},
					"month": {Type: genai.TypeInteger, Description: "The month number, 1 to 12."},
				},
				Required: []string{"year", "month"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := intArg(args, "year")
			if err != nil {
				return errorResponse(id, "MonthlyExpenses", err)
			}
			month, err := intArg(args, "month")
			if err != nil {
				return errorResponse(id, "MonthlyExpenses", err)
			}
			book, err := store.Expenses()
			if err != nil {
				return errorResponse(id, "MonthlyExpenses", err)
			}
			totals := book.MonthlySummary(year, month)
			return outputResponse(id, "MonthlyExpenses", renderer.ExpensesMarkdown(year, month, totals, book.Balance()))
		},
	}
}

// assetsFunc renders the physical asset inventory with its verdicts.
func assetsFunc(store *portfolio.Store) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PhysicalAssets",
			Description: `The user's physical assets, land, cattle, property, machinery, evaluated over a five year horizon with per-category verdicts.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			assets, err := store.Assets()
			if err != nil {
				return errorResponse(id, "PhysicalAssets", err)
			}
			return outputResponse(id, "PhysicalAssets", renderer.AssetsMarkdown(date.Today(), assets, 5))
		},
	}
}

// intArg reads a numeric argument from a function call's loosely typed args.
func intArg(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", name)
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number but %T", name, v)
	}
}
