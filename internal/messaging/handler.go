package messaging

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/karinanutri/clinic-platform/internal/appointments"
	"github.com/karinanutri/clinic-platform/internal/clients"
	"github.com/karinanutri/clinic-platform/internal/observability/metrics"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler exposes message generation for the admin area.
type Handler struct {
	service      *Service
	clients      *clients.Repository
	appointments *appointments.Repository
	metrics      *metrics.BookingMetrics
	logger       *logging.Logger
}

// NewHandler creates a new messaging handler
func NewHandler(service *Service, clientsRepo *clients.Repository, appointmentsRepo *appointments.Repository, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, clients: clientsRepo, appointments: appointmentsRepo, metrics: m, logger: logger}
}

// RetentionResponse carries the generated outreach text.
type RetentionResponse struct {
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}

// Retention handles POST /admin/clients/{clientID}/retention-message
func (h *Handler) Retention(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "clientID")

	client, err := h.clients.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		h.logger.Error("load client failed", "error", err, "client_id", id)
		http.Error(w, "failed to load client", http.StatusInternalServerError)
		return
	}

	lastSession, err := h.lastSessionDate(r, client.ID)
	if err != nil {
		h.logger.Error("load appointments failed", "error", err, "client_id", id)
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}

	message := h.service.RetentionMessage(r.Context(), client.Name, lastSession)
	h.metrics.ObserveMessage("retention")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(RetentionResponse{ClientID: client.ID, Message: message})
}

// lastSessionDate returns the most recent non-cancelled appointment date for
// the client in dd/mm/yyyy form, or "" when there is none.
func (h *Handler) lastSessionDate(r *http.Request, clientID string) (string, error) {
	list, err := h.appointments.All(r.Context())
	if err != nil {
		return "", err
	}
	var last string
	for _, appt := range list {
		if appt.ClientID != clientID || appt.Status == appointments.StatusCancelled {
			continue
		}
		if appt.Date > last {
			last = appt.Date
		}
	}
	if last == "" {
		return "", nil
	}
	t, err := time.Parse(appointments.DateLayout, last)
	if err != nil {
		return "", nil
	}
	return t.Format("02/01/2006"), nil
}
