// Package http serves the ledger over a JSON API.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"moneysaving/internal/ledger"
	applog "moneysaving/internal/log"
)

// maxImportBytes bounds CSV uploads.
const maxImportBytes = 10 << 20

type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Logger       *applog.Logger
}

type Server struct {
	http.Server
	svc    *ledger.Service
	logger *applog.Logger
}

// NewServer configures routes and returns a ready-to-run server.
func NewServer(addr string, svc *ledger.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = applog.Discard()
	}

	s := &Server{
		Server: http.Server{
			Addr:         addr,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
		},
		svc:    svc,
		logger: opts.Logger.WithComponent(applog.ComponentHTTP),
	}
	s.Handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()

	router.Use(applog.Middleware(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(NewHeadersMiddleware(DefaultHeadersConfig()).Middleware)

	router.Get("/healthz", s.handleHealth)
	router.Get("/readyz", s.handleReady)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleListTransactions)
			r.With(middleware.AllowContentType("application/json")).Post("/", s.handleCreateTransaction)
			r.Delete("/", s.handleWipe)

			r.Get("/{id}", s.handleGetTransaction)
			r.With(middleware.AllowContentType("application/json")).Put("/{id}", s.handleUpdateTransaction)
			r.Delete("/{id}", s.handleDeleteTransaction)
		})

		r.Get("/sources", s.handleSources)
		r.Get("/totals", s.handleTotals)
		r.Get("/balances", s.handleBalances)
		r.Get("/purposes", s.handlePurposes)
		r.Get("/summaries", s.handleSummaries)

		r.With(middleware.AllowContentType("application/json")).Post("/convert", s.handleConvert)
		r.Post("/import", s.handleImport)
		r.Get("/export", s.handleExport)
	})

	return router
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.InfoContext(ctx, "HTTP server shutting down", applog.FieldOperation, applog.OpShutdown)
	return s.Server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Ready(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
