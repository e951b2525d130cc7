package finance

import "errors"

var (
	// ErrMissingDescription is returned when the description is empty
	ErrMissingDescription = errors.New("description is required")

	// ErrInvalidKind is returned when the kind is neither income nor expense
	ErrInvalidKind = errors.New("kind must be income or expense")

	// ErrInvalidDate is returned for a date not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date")

	// ErrRecordNotFound is returned when a ledger entry is not found
	ErrRecordNotFound = errors.New("financial record not found")
)
