package clients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler handles admin HTTP requests for client records.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new clients handler
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /admin/clients
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.All(r.Context())
	if err != nil {
		h.logger.Error("failed to list clients", "error", err)
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /admin/clients/{clientID}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	client, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// Create handles POST /admin/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	client, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.logger.Info("client created", "id", client.ID, "name", client.Name)
	writeJSON(w, http.StatusCreated, client)
}

// Update handles PUT /admin/clients/{clientID}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpsertClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	client, err := h.repo.Update(r.Context(), chi.URLParam(r, "clientID"), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// SetStatus handles PATCH /admin/clients/{clientID}/status
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	client, err := h.repo.SetStatus(r.Context(), chi.URLParam(r, "clientID"), req.Status)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func respondError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrClientNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrMissingEmail), errors.Is(err, ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("clients request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
