package portafolio

import (
	"sort"
	"strings"

	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/google/uuid"
)

// ExpenseEntry is one movement of the household ledger. Negative amounts
// are expenses, positive ones income.
type ExpenseEntry struct {
	ID          string    `json:"id"`
	Date        date.Date `json:"fecha"`
	Description string    `json:"descripcion"`
	Amount      Money     `json:"monto"`
	Category    string    `json:"categoria"`
}

// IsExpense reports whether the entry takes money out.
func (e ExpenseEntry) IsExpense() bool { return e.Amount.IsNegative() }

// ExpenseBook is the full ledger plus the per-category monthly budgets.
type ExpenseBook struct {
	Entries []ExpenseEntry   `json:"movimientos"`
	Budgets map[string]Money `json:"presupuestos"`
}

// Add appends a movement, categorizing it from its description when no
// category is given.
func (b *ExpenseBook) Add(on date.Date, description string, amount Money, category string) ExpenseEntry {
	if category == "" {
		category = Categorize(description)
	}
	e := ExpenseEntry{
		ID:          uuid.NewString(),
		Date:        on,
		Description: description,
		Amount:      amount,
		Category:    category,
	}
	b.Entries = append(b.Entries, e)
	return e
}

// CategoryRule sends descriptions containing any of its keywords to a
// category. Rules are evaluated in order, first match wins.
type CategoryRule struct {
	Keywords []string
	Category string
}

// defaultRules classify the common Colombian household movements. The order
// matters: more specific buckets come first, "Otros" is the fallback.
var defaultRules = []CategoryRule{
	{Keywords: []string{"arriendo", "hipoteca", "administracion"}, Category: "Vivienda"},
	{Keywords: []string{"mercado", "supermercado", "restaurante", "comida", "almuerzo"}, Category: "Alimentacion"},
	{Keywords: []string{"gasolina", "transporte", "uber", "taxi", "bus", "peaje"}, Category: "Transporte"},
	{Keywords: []string{"luz", "agua", "gas", "internet", "celular", "energia"}, Category: "Servicios"},
	{Keywords: []string{"eps", "medico", "farmacia", "droga", "salud"}, Category: "Salud"},
	{Keywords: []string{"colegio", "universidad", "curso", "matricula", "libro"}, Category: "Educacion"},
	{Keywords: []string{"cine", "viaje", "paseo", "fiesta", "netflix"}, Category: "Ocio"},
	{Keywords: []string{"cdt", "aporte", "inversion", "ahorro"}, Category: "Inversion"},
	{Keywords: []string{"salario", "sueldo", "nomina", "honorarios", "interes"}, Category: "Ingreso"},
}

// Categorize maps a free-text description to a category through the ordered
// rule set, falling back to "Otros".
func Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range defaultRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule.Category
			}
		}
	}
	return "Otros"
}

// CategoryTotal is one line of a monthly expense summary.
type CategoryTotal struct {
	Category string
	Spent    Money
	Budget   Money
	// Variance is budget minus spending, negative when over budget.
	Variance Money
}

// MonthlySummary totals the expenses of one calendar month per category and
// compares them against the budgets. Income entries are left out. Lines come
// out sorted by category.
func (b ExpenseBook) MonthlySummary(year int, month int) []CategoryTotal {
	spent := make(map[string]Money)
	for _, e := range b.Entries {
		if !e.IsExpense() {
			continue
		}
		if e.Date.Year() != year || int(e.Date.Month()) != month {
			continue
		}
		spent[e.Category] = spent[e.Category].Add(e.Amount.Abs())
	}
	// budgeted categories show up even with zero spending
	for cat := range b.Budgets {
		if _, ok := spent[cat]; !ok {
			spent[cat] = COP(0)
		}
	}

	categories := make([]string, 0, len(spent))
	for cat := range spent {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	totals := make([]CategoryTotal, 0, len(categories))
	for _, cat := range categories {
		budget := b.Budgets[cat]
		totals = append(totals, CategoryTotal{
			Category: cat,
			Spent:    spent[cat],
			Budget:   budget,
			Variance: budget.Sub(spent[cat]),
		})
	}
	return totals
}

// Balance nets the whole ledger: income minus expenses.
func (b ExpenseBook) Balance() Money {
	total := COP(0)
	for _, e := range b.Entries {
		total = total.Add(e.Amount)
	}
	return total
}
