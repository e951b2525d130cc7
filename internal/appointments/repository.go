package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/karinanutri/clinic-platform/internal/store"
)

// Repository persists the appointment collection as a single ordered list.
type Repository struct {
	store *store.Store
}

// NewRepository creates a store-backed appointment repository.
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// Key returns the collection key, for callers batching multi-collection writes.
func (r *Repository) Key() string { return store.KeyAppointments }

// All returns every appointment in insertion order.
func (r *Repository) All(ctx context.Context) ([]Appointment, error) {
	list := []Appointment{}
	if err := r.store.Load(ctx, store.KeyAppointments, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByDate returns appointments on a calendar date, any status.
func (r *Repository) ListByDate(ctx context.Context, date string) ([]Appointment, error) {
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := []Appointment{}
	for _, a := range list {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetByID returns the appointment with the given id.
func (r *Repository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// Create appends a new scheduled appointment, refusing a slot already held
// by a non-cancelled appointment.
func (r *Repository) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Blocks(req.Date, req.Time) {
			return nil, ErrSlotTaken
		}
	}

	apptType := req.Type
	if apptType == "" {
		apptType = TypeClinical
	}
	appt := Appointment{
		ID:       uuid.NewString(),
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Type:     apptType,
		Status:   StatusScheduled,
		MeetLink: req.MeetLink,
		Price:    req.Price,
		Duration: req.Duration,
	}
	list = append(list, appt)
	if err := r.store.Save(ctx, store.KeyAppointments, list); err != nil {
		return nil, err
	}
	return &appt, nil
}

// SetStatus transitions an appointment to cancelled or completed.
func (r *Repository) SetStatus(ctx context.Context, id string, status Status) (*Appointment, error) {
	switch status {
	case StatusScheduled, StatusCancelled, StatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Status = status
		updated := list[i]
		if err := r.store.Save(ctx, store.KeyAppointments, list); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrAppointmentNotFound
}
