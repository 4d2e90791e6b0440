// Package server exposes the portfolio reports over a small JSON API, with
// a daily job recording the capital history.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	portfolio "github.com/Keiner111/Analsis-de-portafolio"
	"github.com/Keiner111/Analsis-de-portafolio/date"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Server serves the portfolio API over one store.
type Server struct {
	log    *logrus.Logger
	store  *portfolio.Store
	rates  *portfolio.RateProvider
	cfg    portfolio.Config
	router *mux.Router
	cron   *cron.Cron
}

// New builds a server over the given store. The rate provider may carry the
// manual fallback from the configuration.
func New(log *logrus.Logger, store *portfolio.Store, rates *portfolio.RateProvider, cfg portfolio.Config) *Server {
	s := &Server{
		log:    log,
		store:  store,
		rates:  rates,
		cfg:    cfg,
		router: mux.NewRouter(),
		cron:   cron.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.logging)

	api.HandleFunc("/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	api.HandleFunc("/goal", s.handleGoal).Methods(http.MethodGet)
	api.HandleFunc("/goal", s.handleSetGoal).Methods(http.MethodPost)
	api.HandleFunc("/fire", s.handleFire).Methods(http.MethodGet)
	api.HandleFunc("/inflation", s.handleInflation).Methods(http.MethodGet)
	api.HandleFunc("/risk", s.handleRisk).Methods(http.MethodGet)
	api.HandleFunc("/rates", s.handleRates).Methods(http.MethodGet)
	api.HandleFunc("/balance", s.handleBalance).Methods(http.MethodGet)
	api.HandleFunc("/liabilities", s.handleAddLiability).Methods(http.MethodPost)
	api.HandleFunc("/liabilities/{id}", s.handleDeleteLiability).Methods(http.MethodDelete)
	api.HandleFunc("/expenses", s.handleExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expenses", s.handleAddExpense).Methods(http.MethodPost)
	api.HandleFunc("/assets", s.handleAssets).Methods(http.MethodGet)
	api.HandleFunc("/history", s.handleHistory).Methods(http.MethodGet)
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run starts the daily history job and serves until the context is done.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc("@daily", s.recordCapital); err != nil {
		return err
	}
	s.cron.Start()
	defer s.cron.Stop()

	srv := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.log.WithField("addr", s.cfg.Listen).Info("serving portfolio API")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// recordCapital appends today's reading to the capital history. Runs daily,
// and once at startup through the serve command.
func (s *Server) recordCapital() {
	rows, err := s.store.Rows()
	if err != nil {
		s.log.WithError(err).Error("daily capital record: could not read portfolio")
		return
	}
	snapshot := portfolio.ComputeSnapshot(date.Today(), rows)
	rates, err := s.rates.Current()
	if err != nil {
		s.log.WithError(err).Warn("daily capital record: using manual rates")
	}

	history, err := s.store.History()
	if err != nil {
		s.log.WithError(err).Error("daily capital record: could not read history")
		return
	}
	history.Append(portfolio.CapitalRecord{
		Date:       date.Today(),
		CapitalCOP: snapshot.TotalCapital,
		CapitalUSD: rates.ToUSD(snapshot.TotalCapital),
		RateCOP:    rates.USDCOP,
	})
	if err := s.store.SaveHistory(history); err != nil {
		s.log.WithError(err).Error("daily capital record: could not save history")
		return
	}
	s.log.WithField("capital", snapshot.TotalCapital.String()).Info("daily capital recorded")
}

// statusWriter captures the status code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// logging is the per-request structured log middleware.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sw.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

// writeJSON writes v as the response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("could not encode response")
	}
}

// writeError reports a failure to the client and the log.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.WithError(err).Warn("request failed")
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
