package reports

import (
	"strings"
	"time"
)

// SessionReport holds the clinical notes for one appointment. Its ID equals
// the appointment id, so saving is replace-on-save: one report per appointment.
type SessionReport struct {
	ID                  string    `json:"id"`
	ClientID            string    `json:"client_id"`
	HealthHistory       string    `json:"health_history"`
	EatingHabits        string    `json:"eating_habits"`
	AnthropometricNotes string    `json:"anthropometric_notes"`
	Goals               string    `json:"goals"`
	EvolutionNotes      string    `json:"evolution_notes"`
	ConductPlan         string    `json:"conduct_plan"`
	Observations        string    `json:"observations"`
	SavedAt             time.Time `json:"saved_at"`
}

// SaveReportRequest is the request body for saving a session report.
type SaveReportRequest struct {
	ClientID            string `json:"client_id"`
	HealthHistory       string `json:"health_history"`
	EatingHabits        string `json:"eating_habits"`
	AnthropometricNotes string `json:"anthropometric_notes"`
	Goals               string `json:"goals"`
	EvolutionNotes      string `json:"evolution_notes"`
	ConductPlan         string `json:"conduct_plan"`
	Observations        string `json:"observations"`
}

// Validate validates the save request.
func (r *SaveReportRequest) Validate() error {
	if strings.TrimSpace(r.ClientID) == "" {
		return ErrMissingClient
	}
	return nil
}
