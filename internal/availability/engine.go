// Package availability computes the bookable time slots for a calendar date.
//
// The clinic books two fixed daily windows, morning and afternoon. Slot
// start times advance from each window's start by the configured consultation
// duration plus a ten-minute buffer between appointments; a slot exists as
// long as its start time falls strictly inside the window, regardless of
// where its end lands. Slots are then filtered against the wall clock (for
// today only) and against existing non-cancelled appointments.
package availability

import (
	"fmt"
	"sync"
	"time"

	"github.com/karinanutri/clinic-platform/internal/appointments"
)

// Fixed scheduling policy. The windows and the buffer are not configurable;
// only the consultation duration comes from settings.
const (
	morningStartMinutes   = 8 * 60     // 08:00
	morningEndMinutes     = 12 * 60    // 12:00, exclusive
	afternoonStartMinutes = 13*60 + 30 // 13:30
	afternoonEndMinutes   = 19 * 60    // 19:00, exclusive
	bufferMinutes         = 10
)

// Engine produces bookable slot start times. The full-day sequence depends
// only on the duration, so it is cached per duration; the date-dependent
// filtering happens on every request. Safe for concurrent use.
type Engine struct {
	loc *time.Location
	now func() time.Time

	mu    sync.Mutex
	cache map[int][]string
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow overrides the wall-clock source. Used by tests.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine whose "today" comparisons happen in the given
// practice-local timezone.
func NewEngine(loc *time.Location, opts ...Option) *Engine {
	e := &Engine{
		loc:   loc,
		now:   time.Now,
		cache: make(map[int][]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DaySlots returns the full-day slot sequence for a consultation duration,
// morning slots followed by afternoon slots. A duration too large for a
// window simply contributes that window's start slot only, or nothing once
// even the start does not fit; the engine never errors.
func (e *Engine) DaySlots(durationMinutes int) []string {
	if durationMinutes <= 0 {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if cached, ok := e.cache[durationMinutes]; ok {
		return cached
	}

	step := durationMinutes + bufferMinutes
	slots := appendWindow(nil, morningStartMinutes, morningEndMinutes, step)
	slots = appendWindow(slots, afternoonStartMinutes, afternoonEndMinutes, step)
	e.cache[durationMinutes] = slots
	return slots
}

func appendWindow(slots []string, startMinutes, endMinutes, step int) []string {
	for m := startMinutes; m < endMinutes; m += step {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// Available returns the ordered bookable slots for a date. Two filters apply
// to the full-day sequence:
//
//   - when the date is today in the practice timezone, slots starting at or
//     before the current hour:minute are dropped; seconds play no part in
//     the comparison;
//   - slots held by a non-cancelled appointment at exactly that (date, time)
//     pair are dropped. Overlap is not considered.
//
// An empty result is a valid answer, not an error.
func (e *Engine) Available(date string, durationMinutes int, existing []appointments.Appointment) []string {
	slots := e.DaySlots(durationMinutes)
	if len(slots) == 0 {
		return []string{}
	}

	now := e.now().In(e.loc)
	isToday := date == now.Format(appointments.DateLayout)
	nowMinutes := now.Hour()*60 + now.Minute()

	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		if isToday && slotMinutes(slot) <= nowMinutes {
			continue
		}
		if slotBlocked(existing, date, slot) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// IsBookable reports whether the specific slot is currently offered for the
// date. The booking flow uses this to reject arbitrary times that never came
// out of the engine.
func (e *Engine) IsBookable(date, slot string, durationMinutes int, existing []appointments.Appointment) bool {
	for _, s := range e.Available(date, durationMinutes, existing) {
		if s == slot {
			return true
		}
	}
	return false
}

// Today returns the current calendar date in the practice timezone.
func (e *Engine) Today() string {
	return e.now().In(e.loc).Format(appointments.DateLayout)
}

func slotMinutes(slot string) int {
	t, err := time.Parse(appointments.TimeLayout, slot)
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

func slotBlocked(existing []appointments.Appointment, date, slot string) bool {
	for i := range existing {
		if existing[i].Blocks(date, slot) {
			return true
		}
	}
	return false
}
