package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zvrva/tourbooking/internal/domain"
	"github.com/zvrva/tourbooking/internal/kafka"
	"github.com/zvrva/tourbooking/internal/repository"
	"go.uber.org/zap"
)

// BookingUseCase is the management surface: listing bookings and operator
// status changes. Creation belongs to the booking flow, never here.
type BookingUseCase interface {
	ListAll(ctx context.Context) ([]domain.BookingDetails, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
	CancelStalePending(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
	log                *zap.Logger
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) { s.notificationsTopic = topic }
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) { s.now = now }
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, log *zap.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
		now:          time.Now,
		log:          log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) ListAll(ctx context.Context) ([]domain.BookingDetails, error) {
	return s.bookings.ListAll(ctx)
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// UpdateStatus moves a booking to confirmed, rejected or cancelled and emits
// an event carrying the changed record.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	switch status {
	case domain.BookingStatusConfirmed, domain.BookingStatusRejected, domain.BookingStatusCancelled:
	default:
		return nil, fmt.Errorf("status %q is not an operator transition", status)
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_"+string(status), updated)
	return updated, nil
}

// CancelStalePending cancels pending bookings whose travel date has passed
// without an operator decision.
func (s *BookingService) CancelStalePending(ctx context.Context) ([]domain.Booking, error) {
	today := s.now().Truncate(24 * time.Hour)
	cancelled, err := s.bookings.CancelPendingBefore(ctx, today)
	if err != nil {
		return nil, err
	}
	for i := range cancelled {
		s.publish(ctx, "booking_cancelled", &cancelled[i])
	}
	return cancelled, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
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
		OccurredAt:       s.now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		s.log.Warn("failed to publish booking event", zap.String("type", eventType), zap.Error(err))
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			s.log.Warn("failed to publish notification event", zap.String("type", eventType), zap.Error(err))
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
