package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler handles admin HTTP requests for the schedule.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a new appointments handler
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /admin/appointments with an optional ?date= filter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Appointment
		err  error
	)
	if date := r.URL.Query().Get("date"); date != "" {
		list, err = h.repo.ListByDate(r.Context(), date)
	} else {
		list, err = h.repo.All(r.Context())
	}
	if err != nil {
		h.logger.Error("failed to list appointments", "error", err)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /admin/appointments
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	appt, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.logger.Info("appointment created", "id", appt.ID, "date", appt.Date, "time", appt.Time)
	writeJSON(w, http.StatusCreated, appt)
}

// SetStatus handles PATCH /admin/appointments/{appointmentID}/status
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	appt, err := h.repo.SetStatus(r.Context(), chi.URLParam(r, "appointmentID"), req.Status)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	h.logger.Info("appointment status changed", "id", appt.ID, "status", appt.Status)
	writeJSON(w, http.StatusOK, appt)
}

func respondError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrSlotTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrMissingClient), errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTime), errors.Is(err, ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("appointments request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
