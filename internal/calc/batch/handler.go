package batch

import (
	"encoding/json"
	"net/http"

	fatigue "Woehler/internal/calc/fatigue"
)

type Handler struct{}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var items []fatigue.Input
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	results, err := Calculate(items)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(fatigue.ErrorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
