package finance

import (
	"strings"
	"time"
)

// Kind discriminates ledger entries.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// CategoryConsultation is the ledger category used for booked consultations.
const CategoryConsultation = "Consulta"

// Record is one ledger entry. Entries created by the booking flow carry no
// structural link back to their appointment beyond the description text;
// cancelling an appointment does not adjust its ledger entry.
type Record struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Kind        Kind    `json:"kind"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// UpsertRecordRequest is the admin request body for ledger entries.
type UpsertRecordRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Kind        Kind    `json:"kind"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// Validate validates the upsert request.
func (r *UpsertRecordRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrMissingDescription
	}
	if r.Kind != KindIncome && r.Kind != KindExpense {
		return ErrInvalidKind
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
