package profile

import (
	"encoding/json"
	"log/slog"
	"net/http"

	auth "Woehler/internal/auth"
	repo "Woehler/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

type profileResponse struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	login, email, err := h.Repo.GetUser(r.Context(), userID)
	if err != nil {
		slog.Error("loading profile", "user_id", userID, "err", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profileResponse{Login: login, Email: email})
}
