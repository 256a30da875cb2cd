package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/rizqly/rizqly/internal/models"
	"github.com/rizqly/rizqly/internal/parser"
	"github.com/rizqly/rizqly/internal/store"
)

// readModel is the reactive state consumed by the UI layer.
type readModel struct {
	Expenses  []models.Expense `json:"expenses"`
	IsLoading bool             `json:"isLoading"`
	Error     string           `json:"error,omitempty"`
	IsOnline  bool             `json:"isOnline"`
}

// addRequest adds an expense either from free text (via the parser) or
// from structured fields bypassing it.
type addRequest struct {
	Text        string          `json:"text,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	BankAccount string          `json:"bankAccount,omitempty"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	st, ok := s.ownerStore(w, r)
	if !ok {
		return
	}
	s.writeReadModel(w, st)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	st, ok := s.ownerStore(w, r)
	if !ok {
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var input store.Input
	if req.Text != "" {
		parsed := parser.Parse(req.Text)
		if parsed == nil {
			s.writeError(w, http.StatusUnprocessableEntity, "could not find an amount in the text")
			return
		}
		input = store.Input{
			Amount:      parsed.Amount,
			Description: parsed.Description,
			Category:    parsed.Category,
			BankAccount: parsed.BankAccount,
			RawInput:    parsed.RawInput,
		}
	} else {
		input = store.Input{
			Amount:      req.Amount,
			Description: req.Description,
			Category:    req.Category,
			BankAccount: req.BankAccount,
		}
	}

	expense, err := st.Add(r.Context(), input)
	if err != nil {
		if errors.Is(err, store.ErrUnauthenticated) {
			s.writeError(w, http.StatusUnauthorized, "sign in to add expenses")
		} else {
			s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	s.writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	st, ok := s.ownerStore(w, r)
	if !ok {
		return
	}

	if err := st.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusUnauthorized, "sign in to delete expenses")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	st, ok := s.ownerStore(w, r)
	if !ok {
		return
	}

	if err := st.Clear(r.Context()); err != nil {
		s.writeError(w, http.StatusUnauthorized, "sign in to clear expenses")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	st, ok := s.ownerStore(w, r)
	if !ok {
		return
	}

	st.Refresh(r.Context())
	s.writeReadModel(w, st)
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	st, ok := s.ownerStore(w, r)
	if !ok {
		return
	}

	ref := time.Now()
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "month must be formatted YYYY-MM")
			return
		}
		ref = parsed
	}

	s.writeJSON(w, http.StatusOK, st.MonthlyStats(ref))
}

// ownerStore resolves the signed-in owner's store, writing a 401 when no
// user is present.
func (s *Server) ownerStore(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	ownerID, ok := s.provider.UserID(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "not signed in")
		return nil, false
	}
	return s.manager.For(r.Context(), ownerID), true
}

func (s *Server) writeReadModel(w http.ResponseWriter, st *store.Store) {
	s.writeJSON(w, http.StatusOK, readModel{
		Expenses:  st.Snapshot(),
		IsLoading: st.IsLoading(),
		Error:     st.Notice(),
		IsOnline:  st.IsOnline(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
