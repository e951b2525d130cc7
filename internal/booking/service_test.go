package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karinanutri/clinic-platform/internal/appointments"
	"github.com/karinanutri/clinic-platform/internal/availability"
	"github.com/karinanutri/clinic-platform/internal/clients"
	"github.com/karinanutri/clinic-platform/internal/finance"
	"github.com/karinanutri/clinic-platform/internal/settings"
	"github.com/karinanutri/clinic-platform/internal/store"
	"github.com/karinanutri/clinic-platform/pkg/logging"
)

type serviceFixture struct {
	service      *Service
	clients      *clients.Repository
	appointments *appointments.Repository
	finances     *finance.Repository
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := logging.New("error")
	st := store.New(client, logger)
	clientsRepo := clients.NewRepository(st)
	appointmentsRepo := appointments.NewRepository(st)
	financesRepo := finance.NewRepository(st)
	settingsStore := settings.NewStore(st)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	// Fixed clock well before the booking date so no same-day cutoff applies.
	engine := availability.NewEngine(loc, availability.WithNow(func() time.Time {
		return time.Date(2026, 9, 1, 9, 0, 0, 0, loc)
	}))

	svc := NewService(st, clientsRepo, appointmentsRepo, financesRepo, settingsStore, engine, "https://meet.google.com/karina-", logger)
	return &serviceFixture{
		service:      svc,
		clients:      clientsRepo,
		appointments: appointmentsRepo,
		finances:     financesRepo,
	}
}

func validRequest() CompleteRequest {
	return CompleteRequest{
		Date: "2026-09-10",
		Slot: "09:10",
		Contact: Contact{
			Name:  "Ana Souza",
			Phone: "11999990000",
			Email: "ana@example.com",
		},
	}
}

func TestCompleteCreatesClientAppointmentAndLedgerEntry(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	result, err := f.service.Complete(ctx, validRequest())
	require.NoError(t, err)
	assert.True(t, result.NewClient)

	clientList, err := f.clients.All(ctx)
	require.NoError(t, err)
	require.Len(t, clientList, 1)
	assert.Equal(t, "Ana Souza", clientList[0].Name)
	assert.Equal(t, "Pendente", clientList[0].Address)
	assert.Equal(t, clients.StatusPending, clientList[0].Status)
	assert.Equal(t, clients.StageFirstContact, clientList[0].TreatmentStage)

	appointmentList, err := f.appointments.All(ctx)
	require.NoError(t, err)
	require.Len(t, appointmentList, 1)
	appt := appointmentList[0]
	assert.Equal(t, clientList[0].ID, appt.ClientID)
	assert.Equal(t, "2026-09-10", appt.Date)
	assert.Equal(t, "09:10", appt.Time)
	assert.Equal(t, appointments.TypeClinical, appt.Type)
	assert.Equal(t, appointments.StatusScheduled, appt.Status)
	assert.Equal(t, 200.0, appt.Price)
	assert.Equal(t, 60, appt.Duration)
	assert.Regexp(t, `^https://meet\.google\.com/karina-[0-9a-f]{8}$`, appt.MeetLink)

	financeList, err := f.finances.All(ctx)
	require.NoError(t, err)
	require.Len(t, financeList, 1)
	rec := financeList[0]
	assert.Equal(t, "Agendamento Online - Ana Souza", rec.Description)
	assert.Equal(t, 200.0, rec.Amount)
	assert.Equal(t, finance.KindIncome, rec.Kind)
	assert.Equal(t, finance.CategoryConsultation, rec.Category)
	assert.Equal(t, "2026-09-10", rec.Date)
}

func TestCompleteReusesClientByEmailCaseInsensitive(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	first, err := f.service.Complete(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Slot = "10:20"
	req.Contact.Email = "ANA@Example.COM"
	req.Contact.Name = "Ana S."
	second, err := f.service.Complete(ctx, req)
	require.NoError(t, err)

	assert.False(t, second.NewClient)
	assert.Equal(t, first.Client.ID, second.Client.ID)

	clientList, err := f.clients.All(ctx)
	require.NoError(t, err)
	assert.Len(t, clientList, 1)

	appointmentList, err := f.appointments.All(ctx)
	require.NoError(t, err)
	assert.Len(t, appointmentList, 2)
}

func TestCompleteRejectsTakenSlot(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Complete(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Contact.Email = "outra@example.com"
	_, err = f.service.Complete(ctx, req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Nothing from the rejected attempt may be persisted.
	clientList, err := f.clients.All(ctx)
	require.NoError(t, err)
	assert.Len(t, clientList, 1)
	financeList, err := f.finances.All(ctx)
	require.NoError(t, err)
	assert.Len(t, financeList, 1)
}

func TestCompleteAllowsSlotFreedByCancellation(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	first, err := f.service.Complete(ctx, validRequest())
	require.NoError(t, err)

	_, err = f.appointments.SetStatus(ctx, first.Appointment.ID, appointments.StatusCancelled)
	require.NoError(t, err)

	req := validRequest()
	req.Contact.Email = "outra@example.com"
	_, err = f.service.Complete(ctx, req)
	assert.NoError(t, err)
}

func TestCompleteRejectsArbitraryTime(t *testing.T) {
	f := newServiceFixture(t)

	req := validRequest()
	req.Slot = "09:15"
	_, err := f.service.Complete(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCompleteValidatesInput(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	req := validRequest()
	req.Contact.Email = ""
	_, err := f.service.Complete(ctx, req)
	assert.ErrorIs(t, err, ErrMissingContact)

	req = validRequest()
	req.Date = "10/09/2026"
	_, err = f.service.Complete(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAvailabilityExcludesBookedSlots(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	before, err := f.service.Availability(ctx, "2026-09-10")
	require.NoError(t, err)
	assert.Contains(t, before, "09:10")

	_, err = f.service.Complete(ctx, validRequest())
	require.NoError(t, err)

	after, err := f.service.Availability(ctx, "2026-09-10")
	require.NoError(t, err)
	assert.NotContains(t, after, "09:10")
	assert.Len(t, after, len(before)-1)
}
