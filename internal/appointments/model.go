package appointments

import (
	"strings"
	"time"
)

// Status of an appointment. Cancelled appointments release their slot;
// every other status keeps it blocked.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Layouts for the stored date and time fields. Time of day carries no
// timezone; all comparisons happen in the practice-local timezone.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// TypeClinical is the default consultation category.
const TypeClinical = "Clinical"

// Appointment is a booked consultation slot belonging to a client.
type Appointment struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Type     string  `json:"type"`
	Status   Status  `json:"status"`
	MeetLink string  `json:"meet_link"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// Blocks reports whether this appointment keeps the (date, time) pair
// unavailable. The match is exact; an appointment only blocks the slot it
// starts at, never slots it merely overlaps.
func (a *Appointment) Blocks(date, timeOfDay string) bool {
	return a.Date == date && a.Time == timeOfDay && a.Status != StatusCancelled
}

// CreateAppointmentRequest is the admin request for scheduling directly.
type CreateAppointmentRequest struct {
	ClientID string  `json:"client_id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	MeetLink string  `json:"meet_link"`
}

// Validate validates the create request.
func (r *CreateAppointmentRequest) Validate() error {
	if strings.TrimSpace(r.ClientID) == "" {
		return ErrMissingClient
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, r.Time); err != nil {
		return ErrInvalidTime
	}
	return nil
}
