package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cryptoprices-service/internal/application"
	"cryptoprices-service/internal/domain"
)

const (
	defaultPage = 0
	defaultSize = 10
)

// Server holds the handlers of the read API. The quote symbol is fixed
// per deployment; the "name" query parameter selects the base symbol.
type Server struct {
	svc   *application.CurrencyService
	quote string
	ping  func(context.Context) error
}

func NewServer(svc *application.CurrencyService, quote string) *Server {
	return &Server{svc: svc, quote: quote}
}

// SetReadyCheck installs the readiness probe used by /readyz.
func (s *Server) SetReadyCheck(f func(context.Context) error) { s.ping = f }

func (s *Server) GetMinPrice(w http.ResponseWriter, r *http.Request) {
	name, ok := s.checkCurrency(w, r)
	if !ok {
		return
	}
	p, err := s.svc.MinPrice(r.Context(), name, s.quote)
	if err != nil {
		s.writeServiceError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) GetMaxPrice(w http.ResponseWriter, r *http.Request) {
	name, ok := s.checkCurrency(w, r)
	if !ok {
		return
	}
	p, err := s.svc.MaxPrice(r.Context(), name, s.quote)
	if err != nil {
		s.writeServiceError(w, name, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) GetPrices(w http.ResponseWriter, r *http.Request) {
	name, ok := s.checkCurrency(w, r)
	if !ok {
		return
	}
	page := atoiDef(r.URL.Query().Get("page"), defaultPage)
	size := atoiDef(r.URL.Query().Get("size"), defaultSize)

	prices, err := s.svc.PricePage(r.Context(), name, s.quote, page, size)
	if err != nil {
		s.writeServiceError(w, name, err)
		return
	}
	if prices == nil {
		prices = []domain.Price{}
	}
	writeJSON(w, http.StatusOK, prices)
}

func (s *Server) GetCSVReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.BuildReport(r.Context())
	if err != nil {
		if errors.Is(err, application.ErrEmptyPrices) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	body := []byte(report)
	w.Header().Set("Content-Disposition", "attachment;filename=csv_report.csv")
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// checkCurrency validates the name parameter and the record's
// existence before any price query runs.
func (s *Server) checkCurrency(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return "", false
	}
	exists, err := s.svc.Exists(r.Context(), name, s.quote)
	if err != nil {
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return "", false
	}
	if !exists {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("currency %s not found", name))
		return "", false
	}
	return name, true
}

func (s *Server) writeServiceError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, application.ErrNotFound):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("currency %s not found", name))
	case errors.Is(err, application.ErrEmptyPrices):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("no prices for currency %s", name))
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
