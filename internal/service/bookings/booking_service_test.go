package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zvrva/tourbooking/internal/domain"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.BookingDetails, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CancelPendingBefore(ctx context.Context, travelDate time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, travelDate)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestBookingService_UpdateStatus_Confirm(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "booking-events", zap.NewNop())

	ctx := context.Background()
	updated := &domain.Booking{ID: "booking-1", Status: domain.BookingStatusConfirmed}

	repo.On("UpdateStatus", ctx, "booking-1", domain.BookingStatusConfirmed).Return(updated, nil).Once()
	producer.On("Publish", ctx, "booking-events", "booking-1", mock.Anything).Return(nil).Once()

	result, err := service.UpdateStatus(ctx, "booking-1", domain.BookingStatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, result.Status)
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_UpdateStatus_RejectsNonOperatorTransition(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo, &MockProducer{}, "booking-events", zap.NewNop())

	// Pending is a creation-only status, not an operator transition.
	result, err := service.UpdateStatus(context.Background(), "booking-1", domain.BookingStatusPending)

	assert.Nil(t, result)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CancelStalePending(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "booking-events", zap.NewNop())

	ctx := context.Background()
	stale := []domain.Booking{
		{ID: "booking-1", Status: domain.BookingStatusCancelled},
		{ID: "booking-2", Status: domain.BookingStatusCancelled},
	}

	repo.On("CancelPendingBefore", ctx, mock.AnythingOfType("time.Time")).Return(stale, nil).Once()
	producer.On("Publish", ctx, "booking-events", "booking-1", mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, "booking-events", "booking-2", mock.Anything).Return(nil).Once()

	cancelled, err := service.CancelStalePending(ctx)

	assert.NoError(t, err)
	assert.Len(t, cancelled, 2)
	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}
