package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/karinanutri/clinic-platform/internal/appointments"
	"github.com/karinanutri/clinic-platform/internal/availability"
	"github.com/karinanutri/clinic-platform/internal/clients"
	"github.com/karinanutri/clinic-platform/internal/finance"
	"github.com/karinanutri/clinic-platform/internal/settings"
	"github.com/karinanutri/clinic-platform/internal/store"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("clinic.internal.booking")

// Service runs the booking-completion operation: resolve or create the
// client, create the appointment, append the ledger entry. The three
// collections commit in one store write, and every validation happens
// before the first mutation, so a failure never leaves partial state.
type Service struct {
	store        *store.Store
	clients      *clients.Repository
	appointments *appointments.Repository
	finances     *finance.Repository
	settings     *settings.Store
	engine       *availability.Engine
	meetLinkBase string
	logger       *logging.Logger
}

// NewService constructs a booking service.
func NewService(
	s *store.Store,
	clientsRepo *clients.Repository,
	appointmentsRepo *appointments.Repository,
	financesRepo *finance.Repository,
	settingsStore *settings.Store,
	engine *availability.Engine,
	meetLinkBase string,
	logger *logging.Logger,
) *Service {
	if s == nil || clientsRepo == nil || appointmentsRepo == nil || financesRepo == nil || settingsStore == nil || engine == nil {
		panic("booking: all dependencies are required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:        s,
		clients:      clientsRepo,
		appointments: appointmentsRepo,
		finances:     financesRepo,
		settings:     settingsStore,
		engine:       engine,
		meetLinkBase: meetLinkBase,
		logger:       logger,
	}
}

// Availability returns the offered slots for a date using the current
// settings and schedule.
func (s *Service) Availability(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse(appointments.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.appointments.All(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Available(date, cfg.DefaultDuration, existing), nil
}

// CompleteRequest carries everything the completion operation needs.
type CompleteRequest struct {
	Date    string
	Slot    string
	Contact Contact
}

// Result is the outcome handed back for the confirmation screen.
type Result struct {
	Appointment *appointments.Appointment
	Client      *clients.Client
	NewClient   bool
}

// Complete executes the booking-completion operation.
func (s *Service) Complete(ctx context.Context, req CompleteRequest) (*Result, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("clinic.booking_date", req.Date),
		attribute.String("clinic.booking_slot", req.Slot),
	)

	if !req.Contact.complete() {
		return nil, ErrMissingContact
	}
	if _, err := time.Parse(appointments.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("booking: load settings: %w", err)
	}
	clientList, err := s.clients.All(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("booking: load clients: %w", err)
	}
	appointmentList, err := s.appointments.All(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("booking: load appointments: %w", err)
	}
	financeList, err := s.finances.All(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("booking: load finances: %w", err)
	}

	// The slot must still be among the engine's offered slots; this also
	// rejects past same-day slots and times that were never generated.
	if !s.engine.IsBookable(req.Date, req.Slot, cfg.DefaultDuration, appointmentList) {
		return nil, ErrSlotUnavailable
	}

	// Resolve the client by case-insensitive email before anything else;
	// the appointment and ledger entry both need the resolved id.
	client := clients.FindByEmail(clientList, req.Contact.Email)
	newClient := client == nil
	if newClient {
		created := clients.Client{
			ID:             uuid.NewString(),
			Name:           req.Contact.Name,
			Email:          req.Contact.Email,
			Phone:          req.Contact.Phone,
			Address:        "Pendente",
			Status:         clients.StatusPending,
			TreatmentStage: clients.StageFirstContact,
		}
		clientList = append(clientList, created)
		client = &clientList[len(clientList)-1]
	}

	appt := appointments.Appointment{
		ID:       uuid.NewString(),
		ClientID: client.ID,
		Date:     req.Date,
		Time:     req.Slot,
		Type:     appointments.TypeClinical,
		Status:   appointments.StatusScheduled,
		MeetLink: s.meetLink(),
		Price:    cfg.DefaultPrice,
		Duration: cfg.DefaultDuration,
	}
	appointmentList = append(appointmentList, appt)

	// The ledger entry references the booking by description only; there is
	// no foreign key back to the appointment, and a later cancellation does
	// not adjust it.
	financeList = append(financeList, finance.Record{
		ID:          uuid.NewString(),
		Description: fmt.Sprintf("Agendamento Online - %s", req.Contact.Name),
		Amount:      cfg.DefaultPrice,
		Kind:        finance.KindIncome,
		Date:        req.Date,
		Category:    finance.CategoryConsultation,
	})

	err = s.store.SaveAll(ctx, map[string]any{
		s.clients.Key():      clientList,
		s.appointments.Key(): appointmentList,
		s.finances.Key():     financeList,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("booking: commit: %w", err)
	}

	s.logger.Info("booking completed",
		"appointment_id", appt.ID,
		"client_id", client.ID,
		"new_client", newClient,
		"date", appt.Date,
		"time", appt.Time,
	)
	return &Result{Appointment: &appt, Client: client, NewClient: newClient}, nil
}

// meetLink builds a meeting link with a short random suffix.
func (s *Service) meetLink() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return s.meetLinkBase + suffix
}
