package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"moneysaving/internal/core"
	"moneysaving/internal/csvio"
	"moneysaving/internal/storage"
)

type convertRequest struct {
	Rate json.Number `json:"rate"`
}

type importResponse struct {
	Imported int    `json:"imported"`
	Atomic   bool   `json:"atomic"`
	Error    string `json:"error,omitempty"`
}

// handleConvert rescales every amount by the given rate.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	rate, err := core.ParseRate(req.Rate.String())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.svc.Convert(r.Context(), rate); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"rate": core.FormatAmount(rate)})
}

// handleImport reads a CSV body. A partial non-atomic import reports the
// number of rows written next to the error.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	atomic := parseBool(r, "atomic")

	records, err := csvio.Read(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		if statusFor(err) != http.StatusRequestEntityTooLarge {
			err = badRequest("%v", err)
		}
		s.writeError(w, r, err)
		return
	}

	n, err := s.svc.Import(r.Context(), records, atomic)
	if err != nil {
		if n > 0 {
			status := statusFor(err)
			writeJSON(w, r, status, importResponse{Imported: n, Atomic: atomic, Error: publicMessage(r, status, err)})
			return
		}
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, importResponse{Imported: n, Atomic: atomic})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	txs, err := s.svc.List(r.Context(), storage.ListOptions{
		Source: strings.TrimSpace(r.URL.Query().Get("source")),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().Format(time.DateOnly))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := csvio.Write(w, txs); err != nil {
		s.logger.ErrorContext(r.Context(), "Export failed", "error", err)
	}
}
