package kanban

import "strings"

// Column is a board column.
type Column string

const (
	ColumnTodo  Column = "todo"
	ColumnDoing Column = "doing"
	ColumnDone  Column = "done"
)

// Task is one card on the practice's task board. Tasks are independent of
// every other entity.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status Column `json:"status"`
}

// CreateTaskRequest is the request body for creating a task.
type CreateTaskRequest struct {
	Title  string `json:"title"`
	Status Column `json:"status"`
}

// Validate validates the create request.
func (r *CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	switch r.Status {
	case "", ColumnTodo, ColumnDoing, ColumnDone:
		return nil
	default:
		return ErrInvalidColumn
	}
}
