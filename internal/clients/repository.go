package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/karinanutri/clinic-platform/internal/store"
)

// Repository persists the client collection as a single ordered list.
// Lookups are linear scans; the practice holds at most a few hundred records.
type Repository struct {
	store *store.Store
}

// NewRepository creates a store-backed client repository.
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// Key returns the collection key, for callers batching multi-collection writes.
func (r *Repository) Key() string { return store.KeyClients }

// All returns every client in insertion order.
func (r *Repository) All(ctx context.Context) ([]Client, error) {
	list := []Client{}
	if err := r.store.Load(ctx, store.KeyClients, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID returns the client with the given id.
func (r *Repository) GetByID(ctx context.Context, id string) (*Client, error) {
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrClientNotFound
}

// FindByEmail returns the client owning the email, matched case-insensitively.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Client, error) {
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if c := FindByEmail(list, email); c != nil {
		return c, nil
	}
	return nil, ErrClientNotFound
}

// FindByEmail scans an in-memory client list for an email match. Exposed so
// the booking flow can resolve against a list it has already loaded.
func FindByEmail(list []Client, email string) *Client {
	for i := range list {
		if list[i].MatchesEmail(email) {
			return &list[i]
		}
	}
	return nil
}

// Create appends a new client built from the request.
func (r *Repository) Create(ctx context.Context, req *UpsertClientRequest) (*Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	client := Client{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		Email:           req.Email,
		Status:          status,
		TreatmentStage:  req.TreatmentStage,
		LastSessionDate: req.LastSessionDate,
	}
	list = append(list, client)
	if err := r.store.Save(ctx, store.KeyClients, list); err != nil {
		return nil, err
	}
	return &client, nil
}

// Update replaces the stored fields of an existing client.
func (r *Repository) Update(ctx context.Context, id string, req *UpsertClientRequest) (*Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Name = req.Name
		list[i].Address = req.Address
		list[i].Phone = req.Phone
		list[i].Email = req.Email
		if req.Status != "" {
			list[i].Status = req.Status
		}
		list[i].TreatmentStage = req.TreatmentStage
		if req.LastSessionDate != "" {
			list[i].LastSessionDate = req.LastSessionDate
		}
		updated := list[i]
		if err := r.store.Save(ctx, store.KeyClients, list); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrClientNotFound
}

// SetStatus moves a client to another lifecycle status. Deactivation is the
// soft replacement for deletion.
func (r *Repository) SetStatus(ctx context.Context, id string, status Status) (*Client, error) {
	switch status {
	case StatusActive, StatusPending, StatusInactive:
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
		if err := r.store.Save(ctx, store.KeyClients, list); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrClientNotFound
}
