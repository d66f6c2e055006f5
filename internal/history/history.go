package history

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	auth "Woehler/internal/auth"
	fatigue "Woehler/internal/calc/fatigue"
	repo "Woehler/internal/repo"
)

const defaultListLimit = 50

type Handler struct {
	Repo repo.Repository
}

// Analyze evaluates one case and records it to the authenticated user's
// history. The evaluation itself is the same pure calculation as the public
// endpoint; only the bookkeeping differs.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input fatigue.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := fatigue.Calculate(input)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(fatigue.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.Repo.SaveAnalysis(r.Context(), userID, input, res); err != nil {
		slog.Error("saving analysis", "user_id", userID, "err", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// List returns the user's saved analyses, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := defaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= defaultListLimit {
			limit = n
		}
	}

	records, err := h.Repo.ListAnalyses(r.Context(), userID, limit)
	if err != nil {
		slog.Error("listing analyses", "user_id", userID, "err", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []repo.AnalysisRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
