package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/karinanutri/clinic-platform/internal/store"
)

// Repository persists the financial ledger as a single ordered list.
// Append-only from the booking flow's perspective; the admin screen may
// edit or delete entries freely.
type Repository struct {
	store *store.Store
}

// NewRepository creates a store-backed ledger repository.
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// Key returns the collection key, for callers batching multi-collection writes.
func (r *Repository) Key() string { return store.KeyFinances }

// All returns every ledger entry in insertion order.
func (r *Repository) All(ctx context.Context) ([]Record, error) {
	list := []Record{}
	if err := r.store.Load(ctx, store.KeyFinances, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Append adds a new ledger entry.
func (r *Repository) Append(ctx context.Context, req *UpsertRecordRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	record := Record{
		ID:          uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Date:        req.Date,
		Category:    req.Category,
	}
	list = append(list, record)
	if err := r.store.Save(ctx, store.KeyFinances, list); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update replaces an existing ledger entry.
func (r *Repository) Update(ctx context.Context, id string, req *UpsertRecordRequest) (*Record, error) {
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
		list[i].Description = req.Description
		list[i].Amount = req.Amount
		list[i].Kind = req.Kind
		list[i].Date = req.Date
		list[i].Category = req.Category
		updated := list[i]
		if err := r.store.Save(ctx, store.KeyFinances, list); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrRecordNotFound
}

// Delete removes a ledger entry.
func (r *Repository) Delete(ctx context.Context, id string) error {
	list, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		return r.store.Save(ctx, store.KeyFinances, list)
	}
	return ErrRecordNotFound
}
