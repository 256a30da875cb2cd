// Package api exposes the expense read model and operations over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rizqly/rizqly/internal/auth"
	"github.com/rizqly/rizqly/internal/store"
)

// Server wires the HTTP routes to per-owner stores.
type Server struct {
	manager  *store.Manager
	provider auth.Provider
	log      zerolog.Logger
}

// NewServer creates a Server.
func NewServer(manager *store.Manager, provider auth.Provider, log zerolog.Logger) *Server {
	return &Server{
		manager:  manager,
		provider: provider,
		log:      log.With().Str("component", "api").Logger(),
	}
}

// Router builds the chi router. jwtSecret signs the bearer tokens the
// auth middleware accepts.
func (s *Server) Router(jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(auth.Middleware(jwtSecret, s.log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/expenses", s.handleListExpenses)
		r.Post("/expenses", s.handleAddExpense)
		r.Delete("/expenses/{id}", s.handleDeleteExpense)
		r.Delete("/expenses", s.handleClearExpenses)
		r.Post("/expenses/refresh", s.handleRefresh)
		r.Get("/stats", s.handleMonthlyStats)
	})

	return r
}
