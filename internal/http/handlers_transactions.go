package http

import (
	"net/http"
	"strings"

	"moneysaving/internal/storage"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	txs, err := s.svc.List(r.Context(), storage.ListOptions{
		Source: strings.TrimSpace(r.URL.Query().Get("source")),
		Limit:  limit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toResponseList(txs))
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tx, err := req.toTransaction(0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.svc.Add(r.Context(), tx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toResponse(created))
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	tx, err := s.svc.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toResponse(tx))
}

// handleUpdateTransaction replaces every field of an existing transaction.
func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tx, err := req.toTransaction(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// the store ignores unknown ids, the API reports them
	if _, err := s.svc.Get(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.svc.Update(r.Context(), tx); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toResponse(tx))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.svc.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleWipe deletes the whole ledger; it refuses to run without confirm=true.
func (s *Server) handleWipe(w http.ResponseWriter, r *http.Request) {
	if !parseBool(r, "confirm") {
		s.writeError(w, r, badRequest("wiping the ledger requires confirm=true"))
		return
	}

	if err := s.svc.Wipe(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
