package kanban

import (
	"context"

	"github.com/google/uuid"

	"github.com/karinanutri/clinic-platform/internal/store"
)

// Repository persists the task board as a single ordered list.
type Repository struct {
	store *store.Store
}

// NewRepository creates a store-backed task repository.
func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// All returns every task in insertion order.
func (r *Repository) All(ctx context.Context) ([]Task, error) {
	list := []Task{}
	if err := r.store.Load(ctx, store.KeyKanban, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create appends a new task, defaulting to the todo column.
func (r *Repository) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = ColumnTodo
	}
	task := Task{ID: uuid.NewString(), Title: req.Title, Status: status}
	list = append(list, task)
	if err := r.store.Save(ctx, store.KeyKanban, list); err != nil {
		return nil, err
	}
	return &task, nil
}

// Move places a task in another column.
func (r *Repository) Move(ctx context.Context, id string, column Column) (*Task, error) {
	switch column {
	case ColumnTodo, ColumnDoing, ColumnDone:
	default:
		return nil, ErrInvalidColumn
	}
	list, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		list[i].Status = column
		moved := list[i]
		if err := r.store.Save(ctx, store.KeyKanban, list); err != nil {
			return nil, err
		}
		return &moved, nil
	}
	return nil, ErrTaskNotFound
}

// Delete removes a task from the board.
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
		return r.store.Save(ctx, store.KeyKanban, list)
	}
	return ErrTaskNotFound
}
