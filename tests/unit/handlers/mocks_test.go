package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"myhustle-backend/internal/domain"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) RequestBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookingsByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookingsByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) AcceptBooking(ctx context.Context, ownerID, bookingID, responseMessage string, agreedPrice float64) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID, responseMessage, agreedPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) DenyBooking(ctx context.Context, ownerID, bookingID, responseMessage string) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID, responseMessage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ProposeChange(ctx context.Context, ownerID, bookingID, responseMessage string) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID, responseMessage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CompleteBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, ownerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CancelBooking(ctx context.Context, requesterID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, requesterID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) WatchOwnerBookings(ctx context.Context, ownerID string, fn func([]domain.Booking)) error {
	args := m.Called(ctx, ownerID, fn)
	return args.Error(0)
}

// MockAnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetBookingStats(ctx context.Context, ownerID string) (*domain.BookingStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingStats), args.Error(1)
}
func (m *MockAnalyticsService) GetShopBookingStats(ctx context.Context, shopID string) (*domain.BookingStats, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingStats), args.Error(1)
}
func (m *MockAnalyticsService) GetRevenueSummary(ctx context.Context, ownerID string) (*domain.RevenueSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueSummary), args.Error(1)
}
func (m *MockAnalyticsService) GetTopSellers(ctx context.Context, ownerID string) ([]domain.ProductSales, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.ProductSales), args.Error(1)
}
func (m *MockAnalyticsService) GetMonthlyTrend(ctx context.Context, ownerID string) ([]domain.MonthRevenue, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.MonthRevenue), args.Error(1)
}
func (m *MockAnalyticsService) GetWeeklySchedule(ctx context.Context, shopID string) (domain.WeekdayCounts, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WeekdayCounts), args.Error(1)
}
