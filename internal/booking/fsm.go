package booking

import "strings"

// State of the public booking workflow.
type State string

const (
	// StateSelectingSlot is the initial state: the visitor is choosing a
	// date and one of the engine's offered slots.
	StateSelectingSlot State = "selecting_slot"
	// StateEnteringContactInfo collects name, phone and email.
	StateEnteringContactInfo State = "entering_contact_info"
	// StateSubmitting is transient while the completion operation runs.
	StateSubmitting State = "submitting"
	// StateConfirmed is the terminal success state.
	StateConfirmed State = "confirmed"
	// StateClosed is the terminal abort state; all in-progress input is
	// discarded.
	StateClosed State = "closed"
)

// Contact is the visitor's contact capture.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (c Contact) complete() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Phone) != "" &&
		strings.TrimSpace(c.Email) != ""
}

// Workflow is the booking finite-state machine. It holds the visitor's
// in-progress selections; persistence only happens inside the completion
// operation, so an abandoned workflow leaves no trace.
type Workflow struct {
	state   State
	date    string
	slot    string
	contact Contact
}

// NewWorkflow starts a workflow in the slot-selection state.
func NewWorkflow() *Workflow {
	return &Workflow{state: StateSelectingSlot}
}

// State returns the current state.
func (w *Workflow) State() State { return w.state }

// Selection returns the chosen date and slot.
func (w *Workflow) Selection() (date, slot string) { return w.date, w.slot }

// Contact returns the captured contact info.
func (w *Workflow) Contact() Contact { return w.contact }

// SelectSlot moves from slot selection to contact capture. The slot must be
// one the availability engine currently offers for the date; arbitrary
// times are rejected by the offered list.
func (w *Workflow) SelectSlot(date, slot string, offered []string) error {
	if w.state != StateSelectingSlot {
		return ErrInvalidTransition
	}
	if date == "" || slot == "" {
		return ErrSlotUnavailable
	}
	for _, s := range offered {
		if s == slot {
			w.date, w.slot = date, slot
			w.state = StateEnteringContactInfo
			return nil
		}
	}
	return ErrSlotUnavailable
}

// EnterContact records the contact info and moves to the submitting state.
func (w *Workflow) EnterContact(c Contact) error {
	if w.state != StateEnteringContactInfo {
		return ErrInvalidTransition
	}
	if !c.complete() {
		return ErrMissingContact
	}
	w.contact = c
	w.state = StateSubmitting
	return nil
}

// Confirm marks the workflow complete after a successful completion
// operation. Messaging outcome plays no part in this transition.
func (w *Workflow) Confirm() error {
	if w.state != StateSubmitting {
		return ErrInvalidTransition
	}
	w.state = StateConfirmed
	return nil
}

// Fail rolls a failed submission back to contact capture for retry.
func (w *Workflow) Fail() error {
	if w.state != StateSubmitting {
		return ErrInvalidTransition
	}
	w.state = StateEnteringContactInfo
	return nil
}

// Close aborts the workflow from any non-terminal state and discards input.
func (w *Workflow) Close() {
	if w.state == StateConfirmed || w.state == StateClosed {
		return
	}
	*w = Workflow{state: StateClosed}
}
