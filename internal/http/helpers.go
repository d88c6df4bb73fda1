package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"moneysaving/internal/core"
	"moneysaving/internal/csvio"
	applog "moneysaving/internal/log"
	"moneysaving/internal/storage"
)

// errBadRequest marks malformed input that never reached the ledger.
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

var validationErrors = []error{
	errBadRequest,
	csvio.ErrMissingColumn,
	core.ErrEmptyTitle,
	core.ErrInvalidAmount,
	core.ErrInvalidType,
	core.ErrInvalidDate,
	core.ErrEmptySource,
	core.ErrEmptyPurpose,
	core.ErrInvalidRate,
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps err to a status code. Internal failures are logged and
// reported without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	writeJSON(w, r, status, errorResponse{Error: publicMessage(r, status, err)})
}

// publicMessage is the client-facing text for err answered with status.
func publicMessage(r *http.Request, status int, err error) string {
	switch status {
	case http.StatusInternalServerError:
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed", applog.FieldError, err)
		return "internal error"
	case http.StatusServiceUnavailable:
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Ledger store unavailable", applog.FieldError, err)
		return "ledger store unavailable"
	case http.StatusRequestEntityTooLarge:
		return fmt.Sprintf("request body exceeds %d bytes", maxImportBytes)
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to encode response", applog.FieldError, err)
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, badRequest("invalid id %q", raw)
	}
	return id, nil
}

func parseLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, badRequest("invalid limit %q", raw)
	}
	return n, nil
}

func parseBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return v
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' {
			return -1
		}
		return r
	}, s)
}

type transactionRequest struct {
	Title   string  `json:"title"`
	Amount  float64 `json:"amount"`
	Type    string  `json:"type"`
	Date    string  `json:"date"`
	Source  string  `json:"source"`
	Purpose string  `json:"purpose"`
}

func (req transactionRequest) toTransaction(id int64) (core.Transaction, error) {
	typ, err := core.ParseType(req.Type)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}

	return core.Transaction{
		ID:      id,
		Title:   sanitizeInput(req.Title),
		Amount:  req.Amount,
		Type:    typ,
		Date:    date,
		Source:  sanitizeInput(req.Source),
		Purpose: sanitizeInput(req.Purpose),
	}, nil
}

type transactionResponse struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Amount  float64 `json:"amount"`
	Type    string  `json:"type"`
	Date    string  `json:"date"`
	Source  string  `json:"source"`
	Purpose string  `json:"purpose"`
}

func toResponse(tx core.Transaction) transactionResponse {
	return transactionResponse{
		ID:      tx.ID,
		Title:   tx.Title,
		Amount:  tx.Amount,
		Type:    tx.Type.String(),
		Date:    core.FormatDate(tx.Date),
		Source:  tx.Source,
		Purpose: tx.Purpose,
	}
}

func toResponseList(txs []core.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	return out
}
