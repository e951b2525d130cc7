package kanban

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler handles admin HTTP requests for the task board.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new kanban handler
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /admin/kanban
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.All(r.Context())
	if err != nil {
		h.logger.Error("failed to list tasks", "error", err)
		http.Error(w, "failed to list tasks", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /admin/kanban
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	task, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// Move handles PATCH /admin/kanban/{taskID}
func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status Column `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	task, err := h.repo.Move(r.Context(), chi.URLParam(r, "taskID"), req.Status)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /admin/kanban/{taskID}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMissingTitle), errors.Is(err, ErrInvalidColumn):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("kanban request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
