package reports

import (
	"context"
	"strings"
	"time"

	"github.com/karinanutri/clinic-platform/internal/store"
)

// Repository persists session reports as a single ordered list.
type Repository struct {
	store *store.Store
	now   func() time.Time
}

// NewRepository creates a store-backed report repository.
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// Save upserts the report for an appointment. An existing report with the
// same appointment id is replaced in place; otherwise the report is appended.
func (r *Repository) Save(ctx context.Context, appointmentID string, req *SaveReportRequest) (*SessionReport, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return nil, ErrMissingAppointment
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	list := []SessionReport{}
	if err := r.store.Load(ctx, store.KeyReports, &list); err != nil {
		return nil, err
	}

	report := SessionReport{
		ID:                  appointmentID,
		ClientID:            req.ClientID,
		HealthHistory:       req.HealthHistory,
		EatingHabits:        req.EatingHabits,
		AnthropometricNotes: req.AnthropometricNotes,
		Goals:               req.Goals,
		EvolutionNotes:      req.EvolutionNotes,
		ConductPlan:         req.ConductPlan,
		Observations:        req.Observations,
		SavedAt:             r.now().UTC(),
	}

	replaced := false
	for i := range list {
		if list[i].ID == appointmentID {
			list[i] = report
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, report)
	}
	if err := r.store.Save(ctx, store.KeyReports, list); err != nil {
		return nil, err
	}
	return &report, nil
}

// Get returns the report for an appointment.
func (r *Repository) Get(ctx context.Context, appointmentID string) (*SessionReport, error) {
	list := []SessionReport{}
	if err := r.store.Load(ctx, store.KeyReports, &list); err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == appointmentID {
			return &list[i], nil
		}
	}
	return nil, ErrReportNotFound
}

// ListByClient returns every report belonging to a client, insertion order.
func (r *Repository) ListByClient(ctx context.Context, clientID string) ([]SessionReport, error) {
	list := []SessionReport{}
	if err := r.store.Load(ctx, store.KeyReports, &list); err != nil {
		return nil, err
	}
	out := []SessionReport{}
	for _, rep := range list {
		if rep.ClientID == clientID {
			out = append(out, rep)
		}
	}
	return out, nil
}
