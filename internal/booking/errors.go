package booking

import "errors"

var (
	// ErrInvalidTransition is returned for a workflow call out of order
	ErrInvalidTransition = errors.New("invalid workflow transition")

	// ErrSlotUnavailable is returned when the requested slot is not among
	// the slots currently offered for the date
	ErrSlotUnavailable = errors.New("slot not available")

	// ErrMissingContact is returned when name, phone or email is empty
	ErrMissingContact = errors.New("name, phone and email are required")

	// ErrInvalidDate is returned for a date not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date")
)
