package reports

import "errors"

var (
	// ErrMissingClient is returned when no client id is supplied
	ErrMissingClient = errors.New("client id is required")

	// ErrMissingAppointment is returned when no appointment id is supplied
	ErrMissingAppointment = errors.New("appointment id is required")

	// ErrReportNotFound is returned when a session report is not found
	ErrReportNotFound = errors.New("session report not found")
)
