package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/service"
)

func newOrderService() (service.OrderService, *MockOrderRepo, *MockProductRepo, *MockServiceRepo, *MockBookingRepo, *MockShopRepo, *MockUserRepo, *MockNotificationRepo, *MockEmailService) {
	orderRepo := new(MockOrderRepo)
	productRepo := new(MockProductRepo)
	serviceRepo := new(MockServiceRepo)
	bookingRepo := new(MockBookingRepo)
	shopRepo := new(MockShopRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewOrderService(orderRepo, productRepo, serviceRepo, bookingRepo, shopRepo, userRepo, noteRepo, emailSvc)
	return svc, orderRepo, productRepo, serviceRepo, bookingRepo, shopRepo, userRepo, noteRepo, emailSvc
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, orderRepo, productRepo, _, _, shopRepo, userRepo, noteRepo, emailSvc := newOrderService()

		shopRepo.On("GetByID", ctx, "shop-1").Return(&domain.Shop{ID: "shop-1", OwnerID: "owner-1"}, nil)
		productRepo.On("GetByID", ctx, "prod-1").Return(&domain.Product{
			ID: "prod-1", Name: "Latte", Price: 5.0, StockQuantity: 10,
		}, nil)
		orderRepo.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return("ord-1", nil)
		productRepo.On("UpdateStock", ctx, "prod-1", 8).Return(nil)
		userRepo.On("GetByID", ctx, "cust-1").Return(&domain.User{
			ID: "cust-1", Email: "alice@test.com", DisplayName: "Alice",
		}, nil)
		emailSvc.On("SendOrderConfirmation", ctx, "alice@test.com", "Alice", mock.AnythingOfType("string"), 10.0).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return("n-1", nil)

		order, err := svc.PlaceOrder(ctx, &domain.Order{
			CustomerID: "cust-1",
			ShopID:     "shop-1",
			Items:      []domain.OrderItem{{ProductID: "prod-1", Quantity: 2}},
		})
		assert.NoError(t, err)
		assert.Equal(t, "ord-1", order.ID)
		assert.Equal(t, 10.0, order.Subtotal)
		assert.Equal(t, 10.0, order.Total)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Equal(t, "Latte", order.Items[0].Name)
		assert.Equal(t, 5.0, order.Items[0].Price)
		assert.NotEmpty(t, order.OrderNumber)
	})

	t.Run("Insufficient stock", func(t *testing.T) {
		svc, _, productRepo, _, _, shopRepo, _, _, _ := newOrderService()

		shopRepo.On("GetByID", ctx, "shop-1").Return(&domain.Shop{ID: "shop-1", OwnerID: "owner-1"}, nil)
		productRepo.On("GetByID", ctx, "prod-1").Return(&domain.Product{
			ID: "prod-1", Name: "Latte", Price: 5.0, StockQuantity: 1,
		}, nil)

		order, err := svc.PlaceOrder(ctx, &domain.Order{
			CustomerID: "cust-1",
			ShopID:     "shop-1",
			Items:      []domain.OrderItem{{ProductID: "prod-1", Quantity: 2}},
		})
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("Empty order rejected", func(t *testing.T) {
		svc, _, _, _, _, _, _, _, _ := newOrderService()

		order, err := svc.PlaceOrder(ctx, &domain.Order{CustomerID: "cust-1", ShopID: "shop-1"})
		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderService_GetAccountingOverview(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UnixMilli()

	t.Run("Income, expenses and net profit", func(t *testing.T) {
		svc, orderRepo, productRepo, serviceRepo, bookingRepo, _, _, _, _ := newOrderService()

		orderRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Order{
			{
				ID: "ord-1", OrderNumber: "ORD-AAAA1111", Total: 100.0, Status: domain.OrderStatusDelivered,
				Items:     []domain.OrderItem{{ProductID: "prod-1", Name: "Mug", Quantity: 4}},
				CreatedAt: now,
			},
			{
				ID: "ord-2", OrderNumber: "ORD-BBBB2222", Total: 40.0, Status: domain.OrderStatusCancelled,
				Items:     []domain.OrderItem{{ProductID: "prod-1", Name: "Mug", Quantity: 2}},
				CreatedAt: now,
			},
		}, nil)
		bookingRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Booking{
			{ID: "bk-1", ServiceID: "svc-1", ServiceName: "Hair Styling", Status: domain.BookingStatusCompleted, CreatedAt: now},
			{ID: "bk-2", ServiceID: "svc-1", ServiceName: "Hair Styling", Status: domain.BookingStatusPending, CreatedAt: now},
		}, nil)
		productRepo.On("GetByID", ctx, "prod-1").Return(&domain.Product{
			ID: "prod-1", Name: "Mug", ExpensePerUnit: 2.5,
		}, nil)
		serviceRepo.On("GetByID", ctx, "svc-1").Return(&domain.Service{
			ID: "svc-1", Name: "Hair Styling", BasePrice: 60.0, ExpensePerUnit: 12.0,
		}, nil)

		overview, err := svc.GetAccountingOverview(ctx, "owner-1")
		assert.NoError(t, err)
		// Income: delivered order 100 + completed booking base price 60.
		// The cancelled order and the pending booking contribute nothing.
		assert.Equal(t, 160.0, overview.TotalIncome)
		// Expenses: 4 mugs at 2.5 + one service at 12.
		assert.Equal(t, 22.0, overview.TotalExpenses)
		assert.Equal(t, 138.0, overview.NetProfit)
		// Lines: order income, order cost, booking income, booking cost.
		assert.Len(t, overview.RecentTransactions, 4)
		for _, tx := range overview.RecentTransactions {
			if tx.Type == domain.TransactionTypeExpense {
				assert.Negative(t, tx.Amount)
			} else {
				assert.Positive(t, tx.Amount)
			}
		}
	})

	t.Run("Recent transactions capped at ten, newest first", func(t *testing.T) {
		svc, orderRepo, productRepo, _, bookingRepo, _, _, _, _ := newOrderService()

		var orders []domain.Order
		for i := 0; i < 12; i++ {
			orders = append(orders, domain.Order{
				ID:          string(rune('a' + i)),
				OrderNumber: "ORD-X",
				Total:       10.0,
				Status:      domain.OrderStatusDelivered,
				CreatedAt:   now - int64(i)*86_400_000,
			})
		}
		orderRepo.On("ListByOwner", ctx, "owner-1").Return(orders, nil)
		bookingRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Booking{}, nil)

		overview, err := svc.GetAccountingOverview(ctx, "owner-1")
		assert.NoError(t, err)
		assert.Equal(t, 120.0, overview.TotalIncome)
		assert.Len(t, overview.RecentTransactions, 10)
		assert.Equal(t, "order-a", overview.RecentTransactions[0].ID)
		productRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Catalog fetched once per product and service", func(t *testing.T) {
		svc, orderRepo, productRepo, serviceRepo, bookingRepo, _, _, _, _ := newOrderService()

		orderRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Order{
			{
				ID: "ord-1", OrderNumber: "ORD-X", Total: 10.0, Status: domain.OrderStatusDelivered,
				Items:     []domain.OrderItem{{ProductID: "prod-1", Name: "Mug", Quantity: 1}},
				CreatedAt: now,
			},
			{
				ID: "ord-2", OrderNumber: "ORD-Y", Total: 10.0, Status: domain.OrderStatusDelivered,
				Items:     []domain.OrderItem{{ProductID: "prod-1", Name: "Mug", Quantity: 1}},
				CreatedAt: now,
			},
		}, nil)
		bookingRepo.On("ListByOwner", ctx, "owner-1").Return([]domain.Booking{
			{ID: "bk-1", ServiceID: "svc-1", ServiceName: "Hair Styling", Status: domain.BookingStatusCompleted, CreatedAt: now},
			{ID: "bk-2", ServiceID: "svc-1", ServiceName: "Hair Styling", Status: domain.BookingStatusCompleted, CreatedAt: now},
		}, nil)
		productRepo.On("GetByID", ctx, "prod-1").Return(&domain.Product{
			ID: "prod-1", Name: "Mug", ExpensePerUnit: 2.5,
		}, nil)
		serviceRepo.On("GetByID", ctx, "svc-1").Return(&domain.Service{
			ID: "svc-1", Name: "Hair Styling", BasePrice: 60.0, ExpensePerUnit: 12.0,
		}, nil)

		overview, err := svc.GetAccountingOverview(ctx, "owner-1")
		assert.NoError(t, err)
		assert.Equal(t, 140.0, overview.TotalIncome)
		assert.Equal(t, 29.0, overview.TotalExpenses)
		productRepo.AssertNumberOfCalls(t, "GetByID", 1)
		serviceRepo.AssertNumberOfCalls(t, "GetByID", 1)
	})

	t.Run("Empty owner", func(t *testing.T) {
		svc, orderRepo, _, _, bookingRepo, _, _, _, _ := newOrderService()

		orderRepo.On("ListByOwner", ctx, "owner-2").Return([]domain.Order{}, nil)
		bookingRepo.On("ListByOwner", ctx, "owner-2").Return([]domain.Booking{}, nil)

		overview, err := svc.GetAccountingOverview(ctx, "owner-2")
		assert.NoError(t, err)
		assert.Zero(t, overview.TotalIncome)
		assert.Zero(t, overview.TotalExpenses)
		assert.Zero(t, overview.NetProfit)
		assert.Empty(t, overview.RecentTransactions)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner updates status", func(t *testing.T) {
		svc, orderRepo, _, _, _, _, _, noteRepo, _ := newOrderService()

		orderRepo.On("GetByID", ctx, "ord-1").Return(&domain.Order{
			ID: "ord-1", OrderNumber: "ORD-AAAA1111", OwnerID: "owner-1", CustomerID: "cust-1",
		}, nil)
		orderRepo.On("UpdateStatus", ctx, "ord-1", domain.OrderStatusShipped).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return("n-1", nil)

		err := svc.UpdateOrderStatus(ctx, "owner-1", "ord-1", domain.OrderStatusShipped)
		assert.NoError(t, err)
	})

	t.Run("Non-owner rejected", func(t *testing.T) {
		svc, orderRepo, _, _, _, _, _, _, _ := newOrderService()

		orderRepo.On("GetByID", ctx, "ord-1").Return(&domain.Order{
			ID: "ord-1", OwnerID: "owner-1",
		}, nil)

		err := svc.UpdateOrderStatus(ctx, "intruder", "ord-1", domain.OrderStatusShipped)
		assert.ErrorIs(t, err, service.ErrNotAuthorized)
	})
}
