package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	bookingRepo repository.BookingRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	log := logger.WithService("order")

	if len(order.Items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}

	shop, err := s.shopRepo.GetByID(ctx, order.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}
	order.OwnerID = shop.OwnerID

	// Item prices and names come from the catalog, never from the client.
	// remaining tracks each product's stock after the whole order, so the same
	// product appearing on two lines is only decremented once per line.
	subtotal := 0.0
	remaining := map[string]int{}
	for i := range order.Items {
		product, err := s.productRepo.GetByID(ctx, order.Items[i].ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product %s: %w", order.Items[i].ProductID, err)
		}
		if order.Items[i].Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity for %s", product.Name)
		}
		left, seen := remaining[product.ID]
		if !seen {
			left = product.StockQuantity
		}
		if left < order.Items[i].Quantity {
			return nil, fmt.Errorf("insufficient stock for %s", product.Name)
		}
		remaining[product.ID] = left - order.Items[i].Quantity
		order.Items[i].Name = product.Name
		order.Items[i].Price = product.Price
		subtotal += product.Price * float64(order.Items[i].Quantity)
	}

	order.Subtotal = subtotal
	order.Total = subtotal + order.Tax - order.Discount
	order.OrderNumber = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	order.Status = domain.OrderStatusPending
	order.PaymentStatus = domain.PaymentStatusPending

	id, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	for productID, left := range remaining {
		if err := s.productRepo.UpdateStock(ctx, productID, left); err != nil {
			log.Warn("failed to decrement stock", "product_id", productID, "error", err)
		}
	}

	if customer, err := s.userRepo.GetByID(ctx, order.CustomerID); err == nil {
		_ = s.emailSvc.SendOrderConfirmation(ctx, customer.Email, customer.DisplayName, order.OrderNumber, order.Total)
	}
	notif := &domain.Notification{
		UserID:  shop.OwnerID,
		Title:   "New Order",
		Message: fmt.Sprintf("Order %s placed for %.2f", order.OrderNumber, order.Total),
		Attributes: map[string]string{
			"type":     "ORDER",
			"order_id": id,
		},
	}
	if _, err := s.noteRepo.Create(ctx, notif); err != nil {
		log.Warn("failed to store notification", "owner_id", shop.OwnerID, "error", err)
	}

	log.Info("order placed", "order_id", id, "order_number", order.OrderNumber, "total", order.Total)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	return s.orderRepo.ListByOwner(ctx, ownerID)
}

func (s *orderService) ListOrdersByShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	return s.orderRepo.ListByShop(ctx, shopID)
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, ownerID, orderID string, status domain.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	notif := &domain.Notification{
		UserID:  order.CustomerID,
		Title:   fmt.Sprintf("Order %s", status),
		Message: fmt.Sprintf("Order %s is now %s", order.OrderNumber, status),
		Attributes: map[string]string{
			"type":     "ORDER",
			"order_id": orderID,
		},
	}
	if _, err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Warn("failed to store notification", "user_id", order.CustomerID, "error", err)
	}
	return nil
}

func (s *orderService) UpdateTracking(ctx context.Context, ownerID, orderID, trackingNumber, carrier string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	return s.orderRepo.UpdateTracking(ctx, orderID, trackingNumber, carrier)
}

// GetAccountingOverview derives income, expenses and the ten most recent
// accounting lines from orders and completed bookings across all shops the
// owner runs. Expense lines carry negative amounts.
func (s *orderService) GetAccountingOverview(ctx context.Context, ownerID string) (*domain.AccountingOverview, error) {
	log := logger.WithService("accounting")

	orders, err := s.orderRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	type datedTx struct {
		tx     domain.Transaction
		millis int64
	}
	var lines []datedTx
	add := func(tx domain.Transaction, millis int64) {
		tx.Date = time.UnixMilli(millis).Format("2006-01-02")
		lines = append(lines, datedTx{tx: tx, millis: millis})
	}

	// Catalog lookups are memoized per call; a nil entry records a failed
	// fetch so it is not retried for every line referencing the same id.
	products := map[string]*domain.Product{}
	lookupProduct := func(id string) *domain.Product {
		if p, seen := products[id]; seen {
			return p
		}
		p, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			log.Warn("skipping expense for unknown product", "product_id", id, "error", err)
			p = nil
		}
		products[id] = p
		return p
	}
	services := map[string]*domain.Service{}
	lookupService := func(id string) *domain.Service {
		if svc, seen := services[id]; seen {
			return svc
		}
		svc, err := s.serviceRepo.GetByID(ctx, id)
		if err != nil {
			log.Warn("skipping accounting lines for unknown service", "service_id", id, "error", err)
			svc = nil
		}
		services[id] = svc
		return svc
	}

	totalIncome := 0.0
	totalExpenses := 0.0

	for _, o := range orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		totalIncome += o.Total
		add(domain.Transaction{
			ID:          "order-" + o.ID,
			Description: fmt.Sprintf("Sale - Order %s", o.OrderNumber),
			Amount:      o.Total,
			Type:        domain.TransactionTypeIncome,
			OrderID:     o.ID,
		}, o.CreatedAt)

		for _, item := range o.Items {
			product := lookupProduct(item.ProductID)
			if product == nil || product.ExpensePerUnit <= 0 {
				continue
			}
			cost := product.ExpensePerUnit * float64(item.Quantity)
			totalExpenses += cost
			add(domain.Transaction{
				ID:          "order-" + o.ID + "-cost-" + item.ProductID,
				Description: fmt.Sprintf("Cost of goods - %s", item.Name),
				Amount:      -cost,
				Type:        domain.TransactionTypeExpense,
				OrderID:     o.ID,
			}, o.CreatedAt)
		}
	}

	for _, b := range bookings {
		if b.Status != domain.BookingStatusCompleted {
			continue
		}
		svc := lookupService(b.ServiceID)
		if svc == nil {
			continue
		}
		totalIncome += svc.BasePrice
		add(domain.Transaction{
			ID:          "booking-" + b.ID,
			Description: fmt.Sprintf("Service - %s", b.ServiceName),
			Amount:      svc.BasePrice,
			Type:        domain.TransactionTypeIncome,
		}, b.CreatedAt)

		if svc.ExpensePerUnit > 0 {
			totalExpenses += svc.ExpensePerUnit
			add(domain.Transaction{
				ID:          "booking-" + b.ID + "-cost",
				Description: fmt.Sprintf("Cost of service - %s", b.ServiceName),
				Amount:      -svc.ExpensePerUnit,
				Type:        domain.TransactionTypeExpense,
			}, b.CreatedAt)
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].millis > lines[j].millis })
	if len(lines) > 10 {
		lines = lines[:10]
	}
	recent := make([]domain.Transaction, 0, len(lines))
	for _, l := range lines {
		recent = append(recent, l.tx)
	}

	return &domain.AccountingOverview{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		NetProfit:          totalIncome - totalExpenses,
		RecentTransactions: recent,
	}, nil
}
