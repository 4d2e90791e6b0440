package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store := portfolio.NewStore(t.TempDir())
	require.NoError(t, store.SaveRows([]portfolio.InvestmentRow{
		{Label: "CDT Bancolombia", Owner: "Keiner", Type: "CDT", Amount: portfolio.COP(10_000_000), MonthlyInterest: portfolio.COP(100_000)},
		{Label: "Ahorros", Owner: "Keiner", Type: "Cuenta", Amount: portfolio.COP(5_000_000)},
	}))

	ratesSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"base":"USD","rates":{"COP":4000,"EUR":0.92}}`)
	}))
	t.Cleanup(ratesSrv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := portfolio.DefaultConfig()
	return New(log, store, portfolio.NewRateProviderAt(ratesSrv.URL, cfg.ManualFallback()), cfg)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestSnapshotEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/snapshot", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"capital_total":15000000`)
	assert.Contains(t, body, `"capital_productivo":10000000`)
	assert.Contains(t, body, `"participacion"`)
}

func TestGoalRoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/goal",
		`{"capital_meta":50000000,"inversion_mensual":2000000,"ingreso_pasivo_objetivo":1500000}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/goal", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"capital_meta":50000000`)
	// 35M missing at 2M a month: under two years, a finite horizon
	assert.Contains(t, body, `"lineal":{"meses":17.5`)
}

func TestFireEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/fire?rate=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// 100k a month at 5%: target 24M
	assert.Contains(t, body, `"capital_objetivo":24000000`)
	assert.Contains(t, body, `"viable":true`)
}

func TestFireRejectsBadRate(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/fire?rate=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInflationEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/inflation?months=24", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"escenarios"`)
	assert.Contains(t, body, `"retorno_real"`)
}

func TestRiskEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/risk", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	// two thirds in one type: a concentration flag
	assert.Contains(t, body, `"clasificacion":"Conservative"`)
	assert.Contains(t, body, `concentration`)
}

func TestRatesEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/api/rates", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"usd_cop":4000`)
	assert.NotContains(t, body, `"manual":true`)
}

func TestLiabilityLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/liabilities",
		`{"descripcion":"crédito carro","valor":20000000,"tasa_anual":12}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, s, http.MethodGet, "/api/balance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pasivos_totales":20000000`)

	w = doJSON(t, s, http.MethodDelete, "/api/liabilities/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/api/liabilities/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLiabilityNeedsDescription(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/liabilities", `{"valor":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExpenseLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/expenses",
		`{"fecha":"2025-06-03","descripcion":"mercado semanal","monto":-300000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"categoria":"Alimentacion"`)

	w = doJSON(t, s, http.MethodGet, "/api/expenses?year=2025&month=6", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `Alimentacion`)
	assert.Contains(t, body, `300000`)
}

func TestAssetsEndpoint(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.store.SaveAssets([]portfolio.PhysicalAsset{{
		Category:        portfolio.RealEstate,
		Description:     "apartamento",
		AcquisitionCost: portfolio.COP(200_000_000),
		CurrentValue:    portfolio.COP(220_000_000),
		AnnualIncome:    portfolio.COP(30_000_000),
		MonthlyCosts:    portfolio.COP(500_000),
	}}))

	w := doJSON(t, s, http.MethodGet, "/api/assets", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"recomendacion":"excellent rental property"`)
	assert.Contains(t, body, `apartamento`)
}

func TestRecordCapitalAppendsHistory(t *testing.T) {
	s := newTestServer(t)
	s.recordCapital()

	w := doJSON(t, s, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"capital_cop":15000000`)
	assert.Contains(t, body, `"tasa_cop":4000`)

	// a second run the same day overwrites instead of duplicating
	s.recordCapital()
	history, err := s.store.History()
	require.NoError(t, err)
	assert.Len(t, history.Records, 1)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodDelete, "/api/snapshot", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
