package repository

import (
	"context"

	"myhustle-backend/internal/domain"
)

// Repositories translate domain calls into document-store queries and map
// results back into typed records. All methods return explicit errors;
// malformed remote documents are skipped individually, never aborting a
// batch fetch.

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, shopOwnerID string) ([]domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, responseMessage string) error
	SetAgreedPrice(ctx context.Context, id string, price float64) error
	Delete(ctx context.Context, id string) error
	// Watch streams the bookings matching shopOwnerID on every change until
	// ctx is cancelled. Used to drive live screen refresh.
	Watch(ctx context.Context, shopOwnerID string, fn func([]domain.Booking)) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	UpdateTracking(ctx context.Context, id, trackingNumber, carrier string) error
}

type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Shop, error)
	List(ctx context.Context) ([]domain.Shop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error)
	Update(ctx context.Context, shop *domain.Shop) error
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	UpdateStock(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}

type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	ListByShop(ctx context.Context, shopID string) ([]domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) (string, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type SnapshotRepository interface {
	Save(ctx context.Context, snap *domain.AnalyticsSnapshot) (string, error)
	ListByShop(ctx context.Context, shopID string, period string) ([]domain.AnalyticsSnapshot, error)
}
