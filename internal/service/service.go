package service

import (
	"context"

	"myhustle-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password, userType string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type ShopService interface {
	CreateShop(ctx context.Context, shop *domain.Shop) (string, error)
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]domain.Shop, error)
	ListShopsByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error)
	UpdateShop(ctx context.Context, ownerID string, shop *domain.Shop) error
	SetShopActive(ctx context.Context, ownerID, shopID string, active bool) error
	DeleteShop(ctx context.Context, ownerID, shopID string) error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, ownerID string, product *domain.Product) (string, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProductsByShop(ctx context.Context, shopID string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, ownerID string, product *domain.Product) error
	DeleteProduct(ctx context.Context, ownerID, productID string) error

	CreateService(ctx context.Context, ownerID string, svc *domain.Service) (string, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
	ListServicesByShop(ctx context.Context, shopID string) ([]domain.Service, error)
	UpdateService(ctx context.Context, ownerID string, svc *domain.Service) error
	DeleteService(ctx context.Context, ownerID, serviceID string) error
}

type BookingService interface {
	RequestBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	AcceptBooking(ctx context.Context, ownerID, bookingID, responseMessage string, agreedPrice float64) (*domain.Booking, error)
	DenyBooking(ctx context.Context, ownerID, bookingID, responseMessage string) (*domain.Booking, error)
	ProposeChange(ctx context.Context, ownerID, bookingID, responseMessage string) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, requesterID, bookingID string) (*domain.Booking, error)
	WatchOwnerBookings(ctx context.Context, ownerID string, fn func([]domain.Booking)) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListOrdersByShop(ctx context.Context, shopID string) ([]domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, ownerID, orderID string, status domain.OrderStatus) error
	UpdateTracking(ctx context.Context, ownerID, orderID, trackingNumber, carrier string) error
	GetAccountingOverview(ctx context.Context, ownerID string) (*domain.AccountingOverview, error)
}

type AnalyticsService interface {
	GetBookingStats(ctx context.Context, ownerID string) (*domain.BookingStats, error)
	GetShopBookingStats(ctx context.Context, shopID string) (*domain.BookingStats, error)
	GetRevenueSummary(ctx context.Context, ownerID string) (*domain.RevenueSummary, error)
	GetTopSellers(ctx context.Context, ownerID string) ([]domain.ProductSales, error)
	GetMonthlyTrend(ctx context.Context, ownerID string) ([]domain.MonthRevenue, error)
	GetWeeklySchedule(ctx context.Context, shopID string) (domain.WeekdayCounts, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error
	SendBookingStatusNotification(ctx context.Context, to, customerName, serviceName, status, message string) error
	SendBookingReminder(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error
	SendOrderConfirmation(ctx context.Context, to, customerName, orderNumber string, total float64) error
}
