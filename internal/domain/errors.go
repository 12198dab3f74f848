package domain

import "errors"

var (
	// ErrNoTravelDate is returned before any remote call when the travel date
	// was never selected.
	ErrNoTravelDate = errors.New("travel date is required")

	// ErrTravelDateTooSoon is returned when the travel date is not strictly
	// after today.
	ErrTravelDateTooSoon = errors.New("travel date must be after today")

	// ErrSubmitInFlight blocks re-entry while a submission is already running
	// for the same dialog.
	ErrSubmitInFlight = errors.New("a booking submission is already in flight")

	// ErrPaymentFailed means the gateway reported a failed checkout; no
	// booking was created.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrPaymentUnreconciled is the partial-failure case: the gateway captured
	// the payment but the booking record could not be persisted. Retrying
	// would risk a double charge, so callers must surface this for manual
	// follow-up instead of offering a retry.
	ErrPaymentUnreconciled = errors.New("payment captured but booking was not saved")

	// ErrTimedOut means a remote call did not answer within the deadline; the
	// outcome at the store is unknown.
	ErrTimedOut = errors.New("operation timed out, status unknown")

	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)
