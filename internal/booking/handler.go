package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/karinanutri/clinic-platform/internal/messaging"
	"github.com/karinanutri/clinic-platform/internal/observability/metrics"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

// Handler exposes the public booking surface: availability queries and the
// booking submission that drives the workflow end to end in one request.
type Handler struct {
	service   *Service
	messenger *messaging.Service
	metrics   *metrics.BookingMetrics
	logger    *logging.Logger
}

// NewHandler creates a new booking handler
func NewHandler(service *Service, messenger *messaging.Service, m *metrics.BookingMetrics, logger *logging.Logger) *Handler {
	return &Handler{service: service, messenger: messenger, metrics: m, logger: logger}
}

// AvailabilityResponse lists the offered slots for a date.
type AvailabilityResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Availability handles GET /booking/availability?date=YYYY-MM-DD
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "missing date", http.StatusBadRequest)
		return
	}
	slots, err := h.service.Availability(r.Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("availability query failed", "error", err, "date", date)
		http.Error(w, "failed to compute availability", http.StatusInternalServerError)
		return
	}
	h.metrics.ObserveAvailability(len(slots))
	writeJSON(w, http.StatusOK, AvailabilityResponse{Date: date, Slots: slots})
}

// SubmitRequest is the public booking submission.
type SubmitRequest struct {
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Contact Contact `json:"contact"`
}

// SubmitResponse carries the confirmation screen payload.
type SubmitResponse struct {
	State        State  `json:"state"`
	Appointment  any    `json:"appointment"`
	Confirmation string `json:"confirmation_message"`
}

// Submit handles POST /booking. The request drives the whole workflow:
// slot selection, contact capture, submission, confirmation.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	offered, err := h.service.Availability(r.Context(), req.Date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("availability lookup failed", "error", err)
		http.Error(w, "booking failed", http.StatusInternalServerError)
		return
	}

	wf := NewWorkflow()
	if err := wf.SelectSlot(req.Date, req.Time, offered); err != nil {
		h.metrics.ObserveBooking("slot_unavailable")
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err := wf.EnterContact(req.Contact); err != nil {
		h.metrics.ObserveBooking("invalid_contact")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Complete(r.Context(), CompleteRequest{
		Date:    req.Date,
		Slot:    req.Time,
		Contact: wf.Contact(),
	})
	if err != nil {
		wf.Fail()
		h.metrics.ObserveBooking("failed")
		respondCompletionError(w, h.logger, err)
		return
	}
	wf.Confirm()
	h.metrics.ObserveBooking("confirmed")

	// Confirmation text is best-effort; the booking is already committed
	// and confirmed regardless of the generation outcome.
	confirmation := h.messenger.ConfirmationMessage(
		r.Context(),
		result.Client.Name,
		displayDate(result.Appointment.Date),
		result.Appointment.Time,
		result.Appointment.MeetLink,
	)
	h.metrics.ObserveMessage("confirmation")

	writeJSON(w, http.StatusCreated, SubmitResponse{
		State:        wf.State(),
		Appointment:  result.Appointment,
		Confirmation: confirmation,
	})
}

func respondCompletionError(w http.ResponseWriter, logger *logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrSlotUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrMissingContact), errors.Is(err, ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("booking completion failed", "error", err)
		http.Error(w, "booking failed", http.StatusInternalServerError)
	}
}

// displayDate renders the stored date in the dd/mm/yyyy form patients expect.
func displayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
