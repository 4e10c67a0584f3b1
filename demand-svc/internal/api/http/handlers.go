package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"foodcart/demand-svc/internal/domain"
	"foodcart/demand-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Leaderboard service.LeaderboardInterface
}

func NewHandler(leaderboard service.LeaderboardInterface) *Handler {
	return &Handler{Leaderboard: leaderboard}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/demand/today", h.topToday).Methods("GET")
	r.HandleFunc("/api/demand/alltime", h.topAllTime).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "demand-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) topToday(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, h.Leaderboard.Today)
}

func (h *Handler) topAllTime(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, h.Leaderboard.AllTime)
}

func (h *Handler) serveLeaderboard(w http.ResponseWriter, r *http.Request, read func(context.Context) ([]domain.ProductDemand, error)) {
	demand, err := read(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to read leaderboard", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if demand == nil {
		demand = []domain.ProductDemand{}
	}
	writeJSON(w, http.StatusOK, demand)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
