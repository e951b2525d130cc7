package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler handles admin HTTP requests for session reports.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new reports handler
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Save handles PUT /admin/appointments/{appointmentID}/report
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	report, err := h.repo.Save(r.Context(), chi.URLParam(r, "appointmentID"), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.logger.Info("session report saved", "appointment_id", report.ID, "client_id", report.ClientID)
	writeJSON(w, http.StatusOK, report)
}

// Get handles GET /admin/appointments/{appointmentID}/report
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.repo.Get(r.Context(), chi.URLParam(r, "appointmentID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ListByClient handles GET /admin/clients/{clientID}/reports
func (h *Handler) ListByClient(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.ListByClient(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func respondError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrReportNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMissingClient), errors.Is(err, ErrMissingAppointment):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("reports request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
