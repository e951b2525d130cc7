package clients

import "strings"

// Status is the lifecycle tag on a client record. Clients are never hard
// deleted in the normal flow; they move to inactive instead.
type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"
)

// StageFirstContact is the treatment stage assigned to clients created by
// the public booking flow.
const StageFirstContact = "First Contact"

// Client represents a patient of the practice.
type Client struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Status          Status `json:"status"`
	TreatmentStage  string `json:"treatment_stage"`
	LastSessionDate string `json:"last_session_date,omitempty"`
}

// MatchesEmail reports whether the client owns the given email address.
// Email is the de-duplication key for bookings, compared case-insensitively.
func (c *Client) MatchesEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Email), strings.TrimSpace(email))
}

// UpsertClientRequest is the admin request body for creating or editing a client.
type UpsertClientRequest struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Status          Status `json:"status"`
	TreatmentStage  string `json:"treatment_stage"`
	LastSessionDate string `json:"last_session_date,omitempty"`
}

// Validate validates the upsert request.
func (r *UpsertClientRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrMissingEmail
	}
	switch r.Status {
	case "", StatusActive, StatusPending, StatusInactive:
	default:
		return ErrInvalidStatus
	}
	return nil
}
