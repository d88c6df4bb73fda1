package http

import (
	"net/http"

	"moneysaving/internal/core"
)

type totalsResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type sourceBalanceResponse struct {
	Source string `json:"source"`
	totalsResponse
}

type purposeTotalResponse struct {
	Purpose string  `json:"purpose"`
	Type    string  `json:"type"`
	Total   float64 `json:"total"`
}

type periodSummaryResponse struct {
	Period string `json:"period"`
	totalsResponse
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.svc.Sources(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sources)
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Totals(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, totalsResponse{Income: t.Income, Expense: t.Expense, Balance: t.Balance})
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.svc.Balances(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]sourceBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, sourceBalanceResponse{
			Source:         b.Source,
			totalsResponse: totalsResponse{Income: b.Income, Expense: b.Expense, Balance: b.Balance},
		})
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handlePurposes(w http.ResponseWriter, r *http.Request) {
	totals, err := s.svc.Purposes(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]purposeTotalResponse, 0, len(totals))
	for _, p := range totals {
		out = append(out, purposeTotalResponse{Purpose: p.Purpose, Type: p.Type.String(), Total: p.Total})
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleSummaries(w http.ResponseWriter, r *http.Request) {
	g, err := core.ParseGranularity(r.URL.Query().Get("granularity"))
	if err != nil {
		s.writeError(w, r, badRequest("%v", err))
		return
	}

	summaries, err := s.svc.Summaries(r.Context(), g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]periodSummaryResponse, 0, len(summaries))
	for _, p := range summaries {
		out = append(out, periodSummaryResponse{
			Period:         p.Period,
			totalsResponse: totalsResponse{Income: p.Income, Expense: p.Expense, Balance: p.Balance},
		})
	}
	writeJSON(w, r, http.StatusOK, out)
}
