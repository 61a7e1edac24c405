package unit

import (
	"context"

	"github.com/stretchr/testify/mock"

	"myhustle-backend/internal/domain"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Booking, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, shopOwnerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, shopOwnerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, responseMessage string) error {
	args := m.Called(ctx, id, status, responseMessage)
	return args.Error(0)
}
func (m *MockBookingRepo) SetAgreedPrice(ctx context.Context, id string, price float64) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) Watch(ctx context.Context, shopOwnerID string, fn func([]domain.Booking)) error {
	args := m.Called(ctx, shopOwnerID, fn)
	return args.Error(0)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockOrderRepo) UpdateTracking(ctx context.Context, id, trackingNumber, carrier string) error {
	args := m.Called(ctx, id, trackingNumber, carrier)
	return args.Error(0)
}

// MockShopRepo
type MockShopRepo struct {
	mock.Mock
}

func (m *MockShopRepo) Create(ctx context.Context, shop *domain.Shop) (string, error) {
	args := m.Called(ctx, shop)
	return args.String(0), args.Error(1)
}
func (m *MockShopRepo) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}
func (m *MockShopRepo) List(ctx context.Context) ([]domain.Shop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Shop), args.Error(1)
}
func (m *MockShopRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Shop), args.Error(1)
}
func (m *MockShopRepo) Update(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}
func (m *MockShopRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Product, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) UpdateStock(ctx context.Context, id string, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockServiceRepo
type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) Create(ctx context.Context, service *domain.Service) (string, error) {
	args := m.Called(ctx, service)
	return args.String(0), args.Error(1)
}
func (m *MockServiceRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
func (m *MockServiceRepo) ListByShop(ctx context.Context, shopID string) ([]domain.Service, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.Service), args.Error(1)
}
func (m *MockServiceRepo) Update(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}
func (m *MockServiceRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}
func (m *MockNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error {
	args := m.Called(ctx, to, customerName, serviceName, date, timeSlot)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingStatusNotification(ctx context.Context, to, customerName, serviceName, status, message string) error {
	args := m.Called(ctx, to, customerName, serviceName, status, message)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReminder(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error {
	args := m.Called(ctx, to, customerName, serviceName, date, timeSlot)
	return args.Error(0)
}
func (m *MockEmailService) SendOrderConfirmation(ctx context.Context, to, customerName, orderNumber string, total float64) error {
	args := m.Called(ctx, to, customerName, orderNumber, total)
	return args.Error(0)
}
