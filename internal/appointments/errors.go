package appointments

import "errors"

var (
	// ErrMissingClient is returned when no client id is supplied
	ErrMissingClient = errors.New("client id is required")

	// ErrInvalidDate is returned for a date not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned for a time not in HH:MM form
	ErrInvalidTime = errors.New("invalid time")

	// ErrInvalidStatus is returned for an unknown appointment status
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrSlotTaken is returned when a non-cancelled appointment already
	// occupies the requested (date, time) pair
	ErrSlotTaken = errors.New("slot already taken")

	// ErrAppointmentNotFound is returned when an appointment is not found
	ErrAppointmentNotFound = errors.New("appointment not found")
)
