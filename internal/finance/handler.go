package finance

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler handles admin HTTP requests for the financial ledger.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new finance handler
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /admin/finances
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.All(r.Context())
	if err != nil {
		h.logger.Error("failed to list finances", "error", err)
		http.Error(w, "failed to list finances", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /admin/finances
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	record, err := h.repo.Append(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// Update handles PUT /admin/finances/{recordID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	record, err := h.repo.Update(r.Context(), chi.URLParam(r, "recordID"), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /admin/finances/{recordID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMissingDescription), errors.Is(err, ErrInvalidKind), errors.Is(err, ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("finance request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
