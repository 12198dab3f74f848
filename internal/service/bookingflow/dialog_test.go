package bookingflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zvrva/tourbooking/internal/domain"
)

func testClock() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func TestDialog_OpenIsIdempotent(t *testing.T) {
	d := NewDialog(testClock)

	d.Open()
	assert.True(t, d.IsOpen())

	// Re-opening an open dialog changes nothing.
	assert.NoError(t, d.SelectDate(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)))
	d.Open()
	assert.True(t, d.IsOpen())
	date, hasDate := d.TravelDate()
	assert.True(t, hasDate)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), date)
}

func TestDialog_SelectDateReplacesValue(t *testing.T) {
	d := NewDialog(testClock)
	d.Open()

	first := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, d.SelectDate(first))
	assert.NoError(t, d.SelectDate(second))

	date, _ := d.TravelDate()
	assert.Equal(t, second, date)
}

func TestDialog_SelectDateRejectsTodayAndEarlier(t *testing.T) {
	d := NewDialog(testClock)
	d.Open()

	assert.ErrorIs(t, d.SelectDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)), domain.ErrTravelDateTooSoon)
	assert.ErrorIs(t, d.SelectDate(time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)), domain.ErrTravelDateTooSoon)

	// Tomorrow is the minimum selectable date.
	assert.NoError(t, d.SelectDate(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)))
}

func TestDialog_CanSubmit(t *testing.T) {
	d := NewDialog(testClock)
	assert.False(t, d.CanSubmit())

	d.Open()
	assert.False(t, d.CanSubmit())

	assert.NoError(t, d.SelectDate(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.CanSubmit())

	assert.NoError(t, d.beginSubmit())
	assert.False(t, d.CanSubmit())
	d.endSubmit()
	assert.True(t, d.CanSubmit())
}

func TestDialog_SingleFlightGuard(t *testing.T) {
	d := NewDialog(testClock)
	d.Open()

	assert.NoError(t, d.beginSubmit())
	assert.ErrorIs(t, d.beginSubmit(), domain.ErrSubmitInFlight)
	d.endSubmit()
	assert.NoError(t, d.beginSubmit())
}

func TestDialog_CompleteSuccessClearsState(t *testing.T) {
	d := NewDialog(testClock)
	d.Open()
	assert.NoError(t, d.SelectDate(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)))

	d.completeSuccess()

	assert.False(t, d.IsOpen())
	_, hasDate := d.TravelDate()
	assert.False(t, hasDate)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(testClock)

	d1 := store.Open("user-1", "pkg-1")
	d2 := store.Open("user-1", "pkg-1")
	assert.Same(t, d1, d2)

	other := store.Open("user-1", "pkg-2")
	assert.NotSame(t, d1, other)

	store.Close("user-1", "pkg-1")
	_, ok := store.Get("user-1", "pkg-1")
	assert.False(t, ok)
}
