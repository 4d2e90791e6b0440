package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/gorilla/mux"
)

// finite returns a pointer to v, or nil when v is not representable in
// JSON. Infinite horizons come out as null.
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func floatQuery(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

// snapshot loads the rows and computes today's snapshot, shared by most
// handlers.
func (s *Server) snapshot() (portfolio.Snapshot, []portfolio.InvestmentRow, error) {
	rows, err := s.store.Rows()
	if err != nil {
		return portfolio.Snapshot{}, nil, err
	}
	return portfolio.ComputeSnapshot(date.Today(), rows), rows, nil
}

type snapshotResponse struct {
	Date              date.Date                    `json:"fecha"`
	TotalCapital      portfolio.Money              `json:"capital_total"`
	ProductiveCapital portfolio.Money              `json:"capital_productivo"`
	MonthlyIncome     portfolio.Money              `json:"ingreso_mensual"`
	AnnualIncome      portfolio.Money              `json:"ingreso_anual"`
	AnnualizedRate    portfolio.Percent            `json:"tasa_anualizada"`
	Diversification   float64                      `json:"diversificacion"`
	Shares            map[string]portfolio.Percent `json:"participacion"`
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, rows, err := s.snapshot()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snapshotResponse{
		Date:              snap.On,
		TotalCapital:      snap.TotalCapital,
		ProductiveCapital: snap.ProductiveCapital,
		MonthlyIncome:     snap.MonthlyIncome,
		AnnualIncome:      snap.AnnualIncome,
		AnnualizedRate:    snap.AnnualizedRate,
		Diversification:   snap.Diversification,
		Shares:            portfolio.TypeShares(rows),
	})
}

type horizonResponse struct {
	Months *float64 `json:"meses"`
	Label  string   `json:"etiqueta"`
}

func newHorizonResponse(h portfolio.Horizon) horizonResponse {
	resp := horizonResponse{Label: h.String()}
	if !h.Infinite && !h.Capped {
		resp.Months = finite(h.Months)
	}
	return resp
}

type goalResponse struct {
	Params       portfolio.GoalParameters `json:"parametros"`
	Current      portfolio.Money          `json:"capital_actual"`
	Linear       horizonResponse          `json:"lineal"`
	Compound     horizonResponse          `json:"compuesto"`
	RequiredRate portfolio.Percent        `json:"tasa_requerida"`
	CurrentRate  portfolio.Percent        `json:"tasa_actual"`
}

func (s *Server) handleGoal(w http.ResponseWriter, r *http.Request) {
	snap, _, err := s.snapshot()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	params, err := s.store.Goal()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	g := portfolio.ComputeGoalReport(snap, params)
	s.writeJSON(w, http.StatusOK, goalResponse{
		Params:       g.Params,
		Current:      g.Current,
		Linear:       newHorizonResponse(g.Linear),
		Compound:     newHorizonResponse(g.Compound),
		RequiredRate: g.RequiredRate,
		CurrentRate:  g.CurrentRate,
	})
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	var params portfolio.GoalParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid goal parameters: %w", err))
		return
	}
	if err := s.store.SaveGoal(params); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, params)
}

type fireResponse struct {
	WithdrawalRate portfolio.Percent `json:"tasa_retiro"`
	Target         portfolio.Money   `json:"capital_objetivo"`
	Viable         bool              `json:"viable"`
	Years          *float64          `json:"anios"`
	Horizon        string            `json:"horizonte"`
	Compound       horizonResponse   `json:"compuesto"`
}

func (s *Server) handleFire(w http.ResponseWriter, r *http.Request) {
	snap, _, err := s.snapshot()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	rate, err := floatQuery(r, "rate", float64(s.cfg.WithdrawalRate))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	plan := portfolio.ComputeFirePlan(snap, portfolio.Percent(rate))
	s.writeJSON(w, http.StatusOK, fireResponse{
		WithdrawalRate: plan.WithdrawalRate,
		Target:         plan.Target,
		Viable:         plan.Viable,
		Years:          finite(plan.Years),
		Horizon:        plan.HorizonString(),
		Compound:       newHorizonResponse(plan.Compound),
	})
}

type inflationResponse struct {
	Params     portfolio.ProjectionParams `json:"parametros"`
	Scenarios  portfolio.ScenarioSet      `json:"escenarios"`
	RealReturn portfolio.Percent          `json:"retorno_real"`
}

func (s *Server) handleInflation(w http.ResponseWriter, r *http.Request) {
	snap, _, err := s.snapshot()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	months, err := intQuery(r, "months", 120)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	inflation, err := floatQuery(r, "inflation", float64(s.cfg.AnnualInflation))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	reinvest, err := floatQuery(r, "reinvest", 1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	params := portfolio.ProjectionParams{
		Capital:         snap.TotalCapital.AsFloat(),
		MonthlyIncome:   snap.MonthlyIncome.AsFloat(),
		AnnualInflation: portfolio.Percent(inflation),
		MonthlyGrowth:   snap.AnnualizedRate.Monthly(),
		Reinvestment:    reinvest,
		Months:          months,
	}
	s.writeJSON(w, http.StatusOK, inflationResponse{
		Params:     params,
		Scenarios:  portfolio.ComputeScenarios(params),
		RealReturn: portfolio.RealAnnualReturn(snap.AnnualizedRate, portfolio.Percent(inflation)),
	})
}

type riskResponse struct {
	Ponderation     float64                      `json:"ponderacion"`
	Class           portfolio.RiskClass          `json:"clasificacion"`
	Diversification float64                      `json:"diversificacion"`
	Shares          map[string]portfolio.Percent `json:"participacion"`
	Flags           []portfolio.RiskFlag         `json:"alertas"`
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.Rows()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	levels, err := s.store.RiskLevels()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	report := portfolio.ComputeRiskReport(rows, levels)
	s.writeJSON(w, http.StatusOK, riskResponse{
		Ponderation:     report.Ponderation,
		Class:           report.Class,
		Diversification: report.Diversification,
		Shares:          report.Shares,
		Flags:           report.Flags,
	})
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	// the manual fallback is still an answer, not an error
	rates, err := s.rates.Current()
	if err != nil {
		s.log.WithError(err).Warn("serving manual rates")
	}
	s.writeJSON(w, http.StatusOK, rates)
}

type balanceResponse struct {
	TotalAssets      portfolio.Money             `json:"activos_totales"`
	TotalLiabilities portfolio.Money             `json:"pasivos_totales"`
	NetWorth         portfolio.Money             `json:"patrimonio_neto"`
	DebtRatio        portfolio.Percent           `json:"razon_deuda"`
	WeightedDebtRate portfolio.Percent           `json:"tasa_deuda_ponderada"`
	MonthlyDebtCost  portfolio.Money             `json:"costo_mensual_deuda"`
	Burden           portfolio.DebtBurden        `json:"carga"`
	Liabilities      []portfolio.LiabilityRecord `json:"pasivos"`
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	snap, _, err := s.snapshot()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	liabilities, err := s.store.Liabilities()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	b := portfolio.ComputeBalanceSheet(snap, liabilities)
	s.writeJSON(w, http.StatusOK, balanceResponse{
		TotalAssets:      b.TotalAssets,
		TotalLiabilities: b.TotalLiabilities,
		NetWorth:         b.NetWorth,
		DebtRatio:        b.DebtRatio,
		WeightedDebtRate: b.WeightedDebtRate,
		MonthlyDebtCost:  b.MonthlyDebtCost,
		Burden:           b.Burden,
		Liabilities:      liabilities,
	})
}

func (s *Server) handleAddLiability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string          `json:"descripcion"`
		Value       portfolio.Money `json:"valor"`
		AnnualRate  float64         `json:"tasa_anual"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid liability: %w", err))
		return
	}
	if req.Description == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("liability needs a description"))
		return
	}

	liabilities, err := s.store.Liabilities()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	record := portfolio.NewLiability(req.Description, req.Value, portfolio.Percent(req.AnnualRate))
	liabilities = append(liabilities, record)
	if err := s.store.SaveLiabilities(liabilities); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleDeleteLiability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteLiability(id); err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type expensesResponse struct {
	Year    int                       `json:"anio"`
	Month   int                       `json:"mes"`
	Totals  []portfolio.CategoryTotal `json:"categorias"`
	Balance portfolio.Money           `json:"balance"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	today := date.Today()
	year, err := intQuery(r, "year", today.Year())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	month, err := intQuery(r, "month", int(today.Month()))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	book, err := s.store.Expenses()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, expensesResponse{
		Year:    year,
		Month:   month,
		Totals:  book.MonthlySummary(year, month),
		Balance: book.Balance(),
	})
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        date.Date       `json:"fecha"`
		Description string          `json:"descripcion"`
		Amount      portfolio.Money `json:"monto"`
		Category    string          `json:"categoria"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid expense: %w", err))
		return
	}
	if req.Date.IsZero() {
		req.Date = date.Today()
	}

	book, err := s.store.Expenses()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	entry := book.Add(req.Date, req.Description, req.Amount, req.Category)
	if err := s.store.SaveExpenses(book); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, entry)
}

type assetResponse struct {
	Asset           portfolio.PhysicalAsset `json:"activo"`
	GrossYield      portfolio.Percent       `json:"rendimiento_bruto"`
	NetAnnualProfit portfolio.Money         `json:"utilidad_anual"`
	CumulativeROI   portfolio.Percent       `json:"roi_acumulado"`
	PaybackYears    *float64                `json:"anios_recuperacion"`
	Depreciation    portfolio.Money         `json:"depreciacion"`
	Recommendation  string                  `json:"recomendacion"`
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	horizon, err := intQuery(r, "horizon", 5)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	assets, err := s.store.Assets()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	today := date.Today()
	resp := make([]assetResponse, 0, len(assets))
	for _, a := range assets {
		ev := a.Evaluate(today, horizon)
		resp = append(resp, assetResponse{
			Asset:           a,
			GrossYield:      ev.GrossYield,
			NetAnnualProfit: ev.NetAnnualProfit,
			CumulativeROI:   ev.CumulativeROI,
			PaybackYears:    finite(ev.PaybackYears),
			Depreciation:    ev.Depreciation,
			Recommendation:  ev.Recommendation,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type historyResponse struct {
	Records       []portfolio.CapitalRecord `json:"registros"`
	MonthlyGrowth portfolio.Percent         `json:"crecimiento_mensual"`
	ProjectedYear portfolio.Money           `json:"proyeccion_anual"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.store.History()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, historyResponse{
		Records:       history.Records,
		MonthlyGrowth: history.MonthlyGrowth(),
		ProjectedYear: history.Project(12),
	})
}
