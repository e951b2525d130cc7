package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler handles admin HTTP requests for global settings.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a new settings handler
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Get handles GET /admin/settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to load settings", "error", err)
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// Update handles PUT /admin/settings
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cfg Settings
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.store.Set(r.Context(), cfg); err != nil {
		if errors.Is(err, ErrInvalidPrice) || errors.Is(err, ErrInvalidDuration) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to save settings", "error", err)
		http.Error(w, "failed to save settings", http.StatusInternalServerError)
		return
	}
	h.logger.Info("settings updated", "default_price", cfg.DefaultPrice, "default_duration", cfg.DefaultDuration)
	writeJSON(w, http.StatusOK, cfg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
