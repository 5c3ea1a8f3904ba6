// Package httpapi exposes the round journal over a read-only HTTP API.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// maxRounds caps the limit query parameter of /rounds.
const maxRounds = 100

// Journal is the read side of the round journal.
type Journal interface {
	Totals() (storage.Totals, error)
	RecentRounds(limit int) ([]storage.RoundEntry, error)
}

// NewServer wires routes and returns an http.Handler.
func NewServer(j Journal, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	h := &handlers{journal: j, logger: logger}
	r.Get("/healthz", h.healthz)
	r.Get("/stats", h.stats)
	r.Get("/rounds", h.rounds)
	return r
}

type handlers struct {
	journal Journal
	logger  *log.Logger
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	totals, err := h.journal.Totals()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *handlers) rounds(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxRounds)
	}

	rounds, err := h.journal.RecentRounds(limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if h.logger != nil {
		h.logger.Error("journal query failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "journal unavailable"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
