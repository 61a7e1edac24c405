package service

import (
	"context"
	"time"

	"myhustle-backend/internal/analytics"
	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

type analyticsService struct {
	bookingRepo  repository.BookingRepository
	orderRepo    repository.OrderRepository
	prices       analytics.PriceTable
	fetchTimeout time.Duration
	now          func() time.Time
}

func NewAnalyticsService(
	bookingRepo repository.BookingRepository,
	orderRepo repository.OrderRepository,
	prices analytics.PriceTable,
	fetchTimeout time.Duration,
) AnalyticsService {
	return &analyticsService{
		bookingRepo:  bookingRepo,
		orderRepo:    orderRepo,
		prices:       prices,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

func (s *analyticsService) GetBookingStats(ctx context.Context, ownerID string) (*domain.BookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats := analytics.BookingStats(bookings, s.now())
	return &stats, nil
}

func (s *analyticsService) GetShopBookingStats(ctx context.Context, shopID string) (*domain.BookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	stats := analytics.BookingStats(bookings, s.now())
	return &stats, nil
}

func (s *analyticsService) GetRevenueSummary(ctx context.Context, ownerID string) (*domain.RevenueSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	orders, bookings, err := s.fetchOwnerData(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary := analytics.Revenue(orders, analytics.CompletedBookings(bookings), s.prices, s.now())
	return &summary, nil
}

func (s *analyticsService) GetTopSellers(ctx context.Context, ownerID string) ([]domain.ProductSales, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	orders, err := s.orderRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return analytics.TopSellers(orders), nil
}

func (s *analyticsService) GetMonthlyTrend(ctx context.Context, ownerID string) ([]domain.MonthRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	orders, bookings, err := s.fetchOwnerData(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyTrend(orders, analytics.CompletedBookings(bookings), s.prices, s.now()), nil
}

func (s *analyticsService) GetWeeklySchedule(ctx context.Context, shopID string) (domain.WeekdayCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyBookingCounts(bookings, s.now()), nil
}

func (s *analyticsService) fetchOwnerData(ctx context.Context, ownerID string) ([]domain.Order, []domain.Booking, error) {
	log := logger.WithService("analytics")

	orders, err := s.orderRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to load orders", "owner_id", ownerID, "error", err)
		return nil, nil, err
	}
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Error("failed to load bookings", "owner_id", ownerID, "error", err)
		return nil, nil, err
	}
	return orders, bookings, nil
}
