package calculators

import (
	"encoding/json"
	"net/http"
)

// Handler exposes the calculator suite over HTTP.
type Handler struct{}

// NewHandler creates a new calculators handler
func NewHandler() *Handler {
	return &Handler{}
}

// Evaluate handles POST /calculators/evaluate
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if in.Weight <= 0 || in.Height <= 0 || in.Age <= 0 {
		http.Error(w, "weight, height and age must be positive", http.StatusBadRequest)
		return
	}
	if in.Gender != GenderFemale && in.Gender != GenderMale {
		http.Error(w, "gender must be 'female' or 'male'", http.StatusBadRequest)
		return
	}
	if in.ActivityFactor == 0 {
		in.ActivityFactor = ActivitySedentary
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Evaluate(in))
}
