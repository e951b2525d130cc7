package kanban

import "errors"

var (
	// ErrMissingTitle is returned when the title is empty
	ErrMissingTitle = errors.New("title is required")

	// ErrInvalidColumn is returned for an unknown board column
	ErrInvalidColumn = errors.New("invalid board column")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")
)
