package agent

import (
	"context"
	"strings"
	"testing"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"google.golang.org/genai"
)

func TestAnalystToolsReadTheStore(t *testing.T) {
	store := portfolio.NewStore(t.TempDir())
	if err := store.SaveRows([]portfolio.InvestmentRow{
		{Label: "CDT", Owner: "Keiner", Type: "CDT", Amount: portfolio.COP(10_000_000), MonthlyInterest: portfolio.COP(100_000)},
	}); err != nil {
		t.Fatal(err)
	}
	cfg := portfolio.DefaultConfig()

	lib := NewLibrary([]Function{overviewFunc(store, cfg), expensesFunc(store), assetsFunc(store)})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "PortfolioOverview"})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("PortfolioOverview = %v, want an output", resp.Response)
	}
	if !strings.Contains(out, "$10.000.000") {
		t.Errorf("overview missing the portfolio capital:\n%s", out)
	}

	resp = lib(context.Background(), &genai.FunctionCall{ID: "2", Name: "MonthlyExpenses", Args: map[string]any{"year": 2025.0, "month": 6.0}})
	if _, ok := resp.Response["output"]; !ok {
		t.Errorf("MonthlyExpenses = %v, want an output", resp.Response)
	}

	resp = lib(context.Background(), &genai.FunctionCall{ID: "3", Name: "NoSuchTool"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("unknown tool = %v, want an error", resp.Response)
	}
}

func TestIntArg(t *testing.T) {
	if got, err := intArg(map[string]any{"year": 2025.0}, "year"); err != nil || got != 2025 {
		t.Errorf("intArg float = %d, %v", got, err)
	}
	if _, err := intArg(map[string]any{}, "year"); err == nil {
		t.Error("missing argument expected an error")
	}
	if _, err := intArg(map[string]any{"year": "2025"}, "year"); err == nil {
		t.Error("string argument expected an error")
	}
}

func TestExpertDeclaration(t *testing.T) {
	e := NewResearcher()
	d := e.Declaration()
	if d.Name != "Researcher" || len(d.Parameters.Required) != 1 {
		t.Errorf("Declaration() = %+v", d)
	}
}
