package renderer

import (
	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
)

// Overview is the view struct behind the full portfolio report. Figures are
// kept as their exact types (Money, Percent) so the template can reuse their
// renderers directly.
type Overview struct {
	Date date.Date `json:"date"`

	TotalCapital      portfolio.Money   `json:"totalCapital"`
	ProductiveCapital portfolio.Money   `json:"productiveCapital"`
	MonthlyIncome     portfolio.Money   `json:"monthlyIncome"`
	AnnualIncome      portfolio.Money   `json:"annualIncome"`
	AnnualizedRate    portfolio.Percent `json:"annualizedRate"`
	Diversification   float64           `json:"diversification"`

	Goal    *OverviewGoal    `json:"goal,omitempty"`
	Fire    *OverviewFire    `json:"fire,omitempty"`
	Balance *OverviewBalance `json:"balance,omitempty"`
	Risk    *OverviewRisk    `json:"risk,omitempty"`
}

// OverviewGoal is the goal section of the overview.
type OverviewGoal struct {
	Target       portfolio.Money   `json:"target"`
	Progress     portfolio.Percent `json:"progress"`
	Linear       string            `json:"linear"`
	Compound     string            `json:"compound"`
	RequiredRate portfolio.Percent `json:"requiredRate"`
	CurrentRate  portfolio.Percent `json:"currentRate"`
}

// OverviewFire is the independence section of the overview.
type OverviewFire struct {
	WithdrawalRate portfolio.Percent `json:"withdrawalRate"`
	Target         portfolio.Money   `json:"target"`
	Horizon        string            `json:"horizon"`
}

// OverviewBalance is the net worth section of the overview.
type OverviewBalance struct {
	TotalLiabilities portfolio.Money   `json:"totalLiabilities"`
	NetWorth         portfolio.Money   `json:"netWorth"`
	DebtRatio        portfolio.Percent `json:"debtRatio"`
	Burden           string            `json:"burden"`
}

// OverviewRisk is the risk section of the overview.
type OverviewRisk struct {
	Ponderation float64         `json:"ponderation"`
	Class       string          `json:"class"`
	Flags       []OverviewRLine `json:"flags,omitempty"`
}

// OverviewRLine is one risk flag rendered in the overview.
type OverviewRLine struct {
	Type  string            `json:"type"`
	Share portfolio.Percent `json:"share"`
	Kind  string            `json:"kind"`
}

// NewOverview assembles the overview from the already computed reports.
// Sections whose report is nil are simply left out.
func NewOverview(s portfolio.Snapshot, g *portfolio.GoalReport, f *portfolio.FirePlan, b *portfolio.BalanceSheet, r *portfolio.RiskReport) *Overview {
	o := &Overview{
		Date:              s.On,
		TotalCapital:      s.TotalCapital,
		ProductiveCapital: s.ProductiveCapital,
		MonthlyIncome:     s.MonthlyIncome,
		AnnualIncome:      s.AnnualIncome,
		AnnualizedRate:    s.AnnualizedRate,
		Diversification:   s.Diversification,
	}

	if g != nil {
		goal := &OverviewGoal{
			Target:       g.Params.TargetCapital,
			Linear:       g.Linear.String(),
			Compound:     g.Compound.String(),
			RequiredRate: g.RequiredRate,
			CurrentRate:  g.CurrentRate,
		}
		if g.Params.TargetCapital.IsPositive() {
			goal.Progress = portfolio.Percent(g.Current.AsFloat() / g.Params.TargetCapital.AsFloat() * 100)
		}
		o.Goal = goal
	}

	if f != nil {
		o.Fire = &OverviewFire{
			WithdrawalRate: f.WithdrawalRate,
			Target:         f.Target,
			Horizon:        f.HorizonString(),
		}
	}

	if b != nil {
		o.Balance = &OverviewBalance{
			TotalLiabilities: b.TotalLiabilities,
			NetWorth:         b.NetWorth,
			DebtRatio:        b.DebtRatio,
			Burden:           string(b.Burden),
		}
	}

	if r != nil {
		risk := &OverviewRisk{
			Ponderation: r.Ponderation,
			Class:       string(r.Class),
		}
		for _, flag := range r.Flags {
			risk.Flags = append(risk.Flags, OverviewRLine{Type: flag.Type, Share: flag.Share, Kind: flag.Kind})
		}
		o.Risk = risk
	}

	return o
}

const overviewMarkdownTemplate = `# Portfolio Overview on {{ .Date }}

Total Capital: **{{ .TotalCapital }}**

| Figure | Value |
|:---|---:|
| Productive Capital | {{ .ProductiveCapital }} |
| Monthly Income | {{ .MonthlyIncome }} |
| Annual Income | {{ .AnnualIncome }} |
| Annualized Rate | {{ .AnnualizedRate }} |
| Diversification | {{ printf "%.3f" .Diversification }} |

{{- with .Goal }}

## Goal

Target: **{{ .Target }}** ({{ .Progress }} reached)

| Model | Time to Target |
|:---|---:|
| Contributions only | {{ .Linear }} |
| Contributions + compounding | {{ .Compound }} |

Required monthly rate for the target income: {{ .RequiredRate }} (current {{ .CurrentRate }})
{{- end }}

{{- with .Fire }}

## Independence

At a {{ .WithdrawalRate }} withdrawal rate the independence number is **{{ .Target }}**, reachable in {{ .Horizon }}.
{{- end }}

{{- with .Balance }}

## Net Worth

| Figure | Value |
|:---|---:|
| Liabilities | {{ .TotalLiabilities }} |
| Net Worth | {{ .NetWorth }} |
| Debt Ratio | {{ .DebtRatio }} |
| Debt Burden | {{ .Burden }} |
{{- end }}

{{- with .Risk }}

## Risk

Ponderation {{ printf "%.1f" .Ponderation }}, classified **{{ .Class }}**.
{{- if .Flags }}

| Type | Share | Flag |
|:---|---:|:---|
{{- range .Flags }}
| {{ .Type }} | {{ .Share }} | {{ .Kind }} |
{{- end }}
{{- end }}
{{- end }}
`

// RenderOverview renders the overview to markdown.
func RenderOverview(o *Overview) string {
	return execute("overview", overviewMarkdownTemplate, o)
}
