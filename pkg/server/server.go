package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/anandaputra/ngsdash/pkg/config"
	"github.com/anandaputra/ngsdash/pkg/datefilter"
	"github.com/anandaputra/ngsdash/pkg/service"
	"github.com/anandaputra/ngsdash/pkg/summary"
)

// Server exposes the parsed collections and derived summaries as JSON for
// the dashboard frontend.
type Server struct {
	config  *config.Config
	logger  *log.Logger
	mux     *http.ServeMux
	service *service.Service
}

// New creates a new HTTP server around a dashboard service.
func New(cfg *config.Config, svc *service.Service, logger *log.Logger) *Server {
	return &Server{
		config:  cfg,
		logger:  logger,
		mux:     http.NewServeMux(),
		service: svc,
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/debts", s.withLogging(s.handleDebts))
	s.mux.HandleFunc("/api/sales", s.withLogging(s.handleSales))
	s.mux.HandleFunc("/api/transactions", s.withLogging(s.handleTransactions))
	s.mux.HandleFunc("/api/sold-items", s.withLogging(s.handleSoldItems))
	s.mux.HandleFunc("/api/category-sales", s.withLogging(s.handleCategorySales))
	s.mux.HandleFunc("/api/snapshot", s.withLogging(s.handleSnapshot))
}

// swapped out in tests
var timeNow = time.Now

// rangeSelector reads and validates the optional ?range= query parameter.
func rangeSelector(r *http.Request) (datefilter.Selector, bool) {
	raw := r.URL.Query().Get("range")
	if raw == "" {
		return "", true
	}
	sel, ok := datefilter.ParseSelector(raw)
	return sel, ok
}

func (s *Server) handleDebts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	debts, err := s.service.Debts(r.Context())
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch debts", err)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		debts = summary.FilterDebtsByStatus(debts, status)
	}

	s.writeOK(w, map[string]interface{}{
		"records": debts,
		"summary": summary.Debts(debts),
		"counts":  summary.CountDebtStatuses(debts),
	})
}

func (s *Server) handleSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	sel, ok := rangeSelector(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "invalid range selector", nil)
		return
	}

	sales, err := s.service.Sales(r.Context())
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch sales", err)
		return
	}
	if sel != "" {
		sales = datefilter.Sales(sales, sel, timeNow())
	}

	s.writeOK(w, map[string]interface{}{
		"records": sales,
		"summary": summary.Sales(sales),
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	sel, ok := rangeSelector(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "invalid range selector", nil)
		return
	}

	txs, err := s.service.Transactions(r.Context())
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch transactions", err)
		return
	}
	if sel != "" {
		txs = datefilter.Transactions(txs, sel, timeNow())
	}

	s.writeOK(w, map[string]interface{}{
		"records": txs,
		"count":   len(txs),
	})
}

func (s *Server) handleSoldItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	sel, ok := rangeSelector(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "invalid range selector", nil)
		return
	}

	items, err := s.service.SoldItems(r.Context())
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch sold items", err)
		return
	}
	if sel != "" {
		items = datefilter.SoldItems(items, sel, timeNow())
	}

	s.writeOK(w, map[string]interface{}{
		"records": items,
		"summary": summary.SoldItems(items),
	})
}

func (s *Server) handleCategorySales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	sel, ok := rangeSelector(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "invalid range selector", nil)
		return
	}

	categories, err := s.service.CategorySales(r.Context(), sel)
	if err != nil {
		s.respondError(w, r, http.StatusBadGateway, "failed to fetch category sales", err)
		return
	}

	s.writeOK(w, map[string]interface{}{
		"records": categories,
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	snap := s.service.Refresh(r.Context())

	failed := make([]string, 0, len(snap.Errors))
	for kind := range snap.Errors {
		failed = append(failed, string(kind))
	}

	s.writeOK(w, map[string]interface{}{
		"snapshot":     snap,
		"failedKinds":  failed,
		"debtSummary":  summary.Debts(snap.Debts),
		"salesSummary": summary.Sales(snap.Sales),
		"itemsSummary": summary.SoldItems(snap.SoldItems),
	})
}

// --- helpers ---

func (s *Server) writeOK(w http.ResponseWriter, v interface{}) {
	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   v,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log requests and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
