package bookingflow

import (
	"sync"
	"time"

	"github.com/zvrva/tourbooking/internal/domain"
)

// Dialog holds a user's in-progress selection for one package: the travel
// date, whether the dialog is open, and whether a submission is in flight.
// Abandoning the dialog at any point persists nothing.
type Dialog struct {
	mu         sync.Mutex
	open       bool
	travelDate time.Time
	submitting bool

	now func() time.Time
}

func NewDialog(now func() time.Time) *Dialog {
	if now == nil {
		now = time.Now
	}
	return &Dialog{now: now}
}

// Open shows the dialog. Re-opening an open dialog is a no-op.
func (d *Dialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
}

func (d *Dialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// SelectDate replaces the held travel date. The minimum selectable date is
// the day after today, same rule the submitter enforces.
func (d *Dialog) SelectDate(date time.Time) error {
	if !strictlyAfterToday(date, d.now()) {
		return domain.ErrTravelDateTooSoon
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.travelDate = date
	return nil
}

// TravelDate returns the held date; ok is false when none was selected.
func (d *Dialog) TravelDate() (time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.travelDate, !d.travelDate.IsZero()
}

// CanSubmit mirrors the submit affordance: a date is selected and nothing is
// in flight.
func (d *Dialog) CanSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open && !d.submitting && !d.travelDate.IsZero()
}

// Close dismisses the dialog, keeping the selected date so a re-opened dialog
// can retry. Mid-flow abandonment has no side effects.
func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
}

// beginSubmit claims the single-flight slot. Exactly one submission may run
// per dialog; a second call fails until endSubmit.
func (d *Dialog) beginSubmit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitting {
		return domain.ErrSubmitInFlight
	}
	d.submitting = true
	return nil
}

func (d *Dialog) endSubmit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitting = false
}

// completeSuccess closes the dialog and clears the held date. Only called
// after the booking record is persisted; failures leave the state untouched
// for retry.
func (d *Dialog) completeSuccess() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
	d.travelDate = time.Time{}
}

func strictlyAfterToday(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return date.After(today)
}
