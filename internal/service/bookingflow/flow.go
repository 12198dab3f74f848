package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/kafka"
	"github.com/zvrva/tourbooking/internal/payment"
	"github.com/zvrva/tourbooking/internal/repository"
	"go.uber.org/zap"
)

type FlowUseCase interface {
	Submit(ctx context.Context, dialog *Dialog, userID, packageID string, travelDate time.Time, totalAmountPaisa int64) (*domain.Booking, error)
	Pay(ctx context.Context, dialog *Dialog, userID string, pkg *domain.Package, travelDate time.Time, checkoutToken string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Flow is the booking submission flow: the pay-later path creates a pending
// booking directly; the payment path waits for the gateway to report success
// and only then creates a confirmed booking. Both paths make exactly one
// create call per user action.
type Flow struct {
	bookings           repository.BookingRepository
	gateway            payment.Gateway
	producer           Producer
	notifier           Notifier
	bookingTopic       string
	notificationsTopic string
	submitTimeout      time.Duration
	paymentTimeout     time.Duration
	now                func() time.Time
	log                *zap.Logger
}

type FlowOption func(*Flow)

func WithNotificationsTopic(topic string) FlowOption {
	return func(f *Flow) { f.notificationsTopic = topic }
}

func WithClock(now func() time.Time) FlowOption {
	return func(f *Flow) { f.now = now }
}

func NewFlow(
	bookings repository.BookingRepository,
	gateway payment.Gateway,
	producer Producer,
	notifier Notifier,
	bookingTopic string,
	submitTimeout, paymentTimeout time.Duration,
	log *zap.Logger,
	opts ...FlowOption,
) *Flow {
	flow := &Flow{
		bookings:       bookings,
		gateway:        gateway,
		producer:       producer,
		notifier:       notifier,
		bookingTopic:   bookingTopic,
		submitTimeout:  submitTimeout,
		paymentTimeout: paymentTimeout,
		now:            time.Now,
		log:            log,
	}
	for _, opt := range opts {
		opt(flow)
	}
	return flow
}

// Submit is the pay-later path. The booking is created with status pending and
// no payment fields; total amount is taken as given and never recomputed.
func (f *Flow) Submit(ctx context.Context, dialog *Dialog, userID, packageID string, travelDate time.Time, totalAmountPaisa int64) (*domain.Booking, error) {
	if err := f.validateDate(travelDate); err != nil {
		return nil, err
	}
	if dialog != nil {
		if err := dialog.beginSubmit(); err != nil {
			return nil, err
		}
		defer dialog.endSubmit()
	}

	booking := &domain.Booking{
		UserID:           userID,
		PackageID:        packageID,
		TravelDate:       travelDate,
		TotalAmountPaisa: totalAmountPaisa,
		Status:           domain.BookingStatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
	}
	if err := f.create(ctx, booking); err != nil {
		// Dialog state stays as-is so the user can retry.
		return nil, err
	}

	f.publish(ctx, "booking_created", booking)
	f.notify(ctx, Notification{
		Title:       "Booking successful!",
		Description: "Your booking has been submitted and is pending confirmation.",
		Variant:     VariantDefault,
	})
	if dialog != nil {
		dialog.completeSuccess()
	}
	return booking, nil
}

// Pay runs the payment path: start a checkout with the gateway, wait for its
// outcome, and create a confirmed booking only after it reports success. A
// cancelled checkout returns (nil, nil): no record, no error.
func (f *Flow) Pay(ctx context.Context, dialog *Dialog, userID string, pkg *domain.Package, travelDate time.Time, checkoutToken string) (*domain.Booking, error) {
	if err := f.validateDate(travelDate); err != nil {
		return nil, err
	}
	if dialog != nil {
		if err := dialog.beginSubmit(); err != nil {
			return nil, err
		}
		defer dialog.endSubmit()
	}

	handle, err := f.gateway.StartCheckout(ctx, payment.CheckoutRequest{
		Token:       checkoutToken,
		AmountPaisa: pkg.PricePaisa,
		ProductID:   pkg.ID,
		ProductName: pkg.Title,
	})
	if err != nil {
		return nil, err
	}

	res, err := f.awaitCheckout(ctx, handle)
	if err != nil {
		return nil, err
	}

	switch res.Outcome {
	case payment.OutcomeCancelled:
		// User dismissed the widget. Not a failure: no record, no notice.
		return nil, nil
	case payment.OutcomeFailed:
		f.notify(ctx, Notification{
			Title:       "Payment failed",
			Description: "Please try again or contact support.",
			Variant:     VariantDestructive,
		})
		if res.Err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, res.Err)
		}
		return nil, domain.ErrPaymentFailed
	case payment.OutcomeSucceeded:
		return f.recordPaidBooking(ctx, dialog, userID, pkg, travelDate, res.Reference)
	default:
		return nil, fmt.Errorf("unknown checkout outcome %q", res.Outcome)
	}
}

func (f *Flow) awaitCheckout(ctx context.Context, handle *payment.Handle) (payment.CheckoutResult, error) {
	timer := time.NewTimer(f.paymentTimeout)
	defer timer.Stop()

	select {
	case res := <-handle.Result():
		return res, nil
	case <-timer.C:
		return payment.CheckoutResult{}, domain.ErrTimedOut
	case <-ctx.Done():
		// The checkout may still complete at the gateway; a late result is
		// drained by the handle's buffer and ignored here.
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return payment.CheckoutResult{}, domain.ErrTimedOut
		}
		return payment.CheckoutResult{}, ctx.Err()
	}
}

// recordPaidBooking is the only insert on the payment path and runs strictly
// after the gateway reported success. If it fails the money may already be
// captured with no record behind it; that gets its own error so callers never
// offer a plain retry.
func (f *Flow) recordPaidBooking(ctx context.Context, dialog *Dialog, userID string, pkg *domain.Package, travelDate time.Time, reference string) (*domain.Booking, error) {
	booking := &domain.Booking{
		UserID:           userID,
		PackageID:        pkg.ID,
		TravelDate:       travelDate,
		TotalAmountPaisa: pkg.PricePaisa,
		Status:           domain.BookingStatusConfirmed,
		PaymentStatus:    domain.PaymentStatusCompleted,
		PaymentMethod:    f.gateway.Name(),
		PaymentReference: reference,
	}
	if err := f.create(ctx, booking); err != nil {
		f.log.Error("payment captured but booking insert failed",
			zap.String("user_id", userID),
			zap.String("package_id", pkg.ID),
			zap.String("payment_reference", reference),
			zap.Error(err))
		f.notify(ctx, Notification{
			Title:       "Error saving booking",
			Description: "Your payment succeeded but the booking could not be saved. Please contact support.",
			Variant:     VariantDestructive,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentUnreconciled, err)
	}

	f.publish(ctx, "booking_paid", booking)
	f.notify(ctx, Notification{
		Title:       "Payment successful!",
		Description: "Your booking has been confirmed.",
		Variant:     VariantDefault,
	})
	if dialog != nil {
		dialog.completeSuccess()
	}
	return booking, nil
}

func (f *Flow) create(ctx context.Context, booking *domain.Booking) error {
	createCtx := ctx
	if f.submitTimeout > 0 {
		var cancel context.CancelFunc
		createCtx, cancel = context.WithTimeout(ctx, f.submitTimeout)
		defer cancel()
	}
	if err := f.bookings.Create(createCtx, booking); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return domain.ErrTimedOut
		}
		return err
	}
	return nil
}

func (f *Flow) validateDate(travelDate time.Time) error {
	if travelDate.IsZero() {
		return domain.ErrNoTravelDate
	}
	if !strictlyAfterToday(travelDate, f.now()) {
		return domain.ErrTravelDateTooSoon
	}
	return nil
}

func (f *Flow) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if f.producer == nil || f.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		EventID:          uuid.NewString(),
		Type:             eventType,
		BookingID:        booking.ID,
		UserID:           booking.UserID,
		PackageID:        booking.PackageID,
		TravelDate:       booking.TravelDate.Format("2006-01-02"),
		TotalAmountPaisa: booking.TotalAmountPaisa,
		Status:           string(booking.Status),
		PaymentStatus:    string(booking.PaymentStatus),
		PaymentReference: booking.PaymentReference,
		OccurredAt:       f.now(),
	}
	if err := f.producer.Publish(ctx, f.bookingTopic, booking.ID, event); err != nil {
		f.log.Warn("failed to publish booking event", zap.String("type", eventType), zap.Error(err))
	}
	if f.notificationsTopic != "" {
		if err := f.producer.Publish(ctx, f.notificationsTopic, booking.ID, event); err != nil {
			f.log.Warn("failed to publish notification event", zap.String("type", eventType), zap.Error(err))
		}
	}
}

func (f *Flow) notify(ctx context.Context, n Notification) {
	if f.notifier != nil {
		f.notifier.Notify(ctx, n)
	}
}

var _ FlowUseCase = (*Flow)(nil)
