package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

type orderRepository struct {
	client *firestore.Client
}

func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colOrders)
}

func (r *orderRepository) Create(ctx context.Context, o *domain.Order) (string, error) {
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = domain.PaymentStatusPending
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	now := nowMillis()
	o.CreatedAt = now
	o.UpdatedAt = now

	logger.StoreCall("create", colOrders, "shop_id", o.ShopID, "order_number", o.OrderNumber)
	ref, _, err := r.collection().Add(ctx, o)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	o.ID = ref.ID
	return ref.ID, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	var o domain.Order
	if err := doc.DataTo(&o); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", id, err)
	}
	o.ID = doc.Ref.ID
	return &o, nil
}

func (r *orderRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	return r.list(ctx, r.collection().Where("ownerId", "==", ownerID))
}

func (r *orderRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Order, error) {
	return r.list(ctx, r.collection().Where("shopId", "==", shopID))
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return r.list(ctx, r.collection().Where("customerId", "==", customerID))
}

func (r *orderRepository) list(ctx context.Context, q firestore.Query) ([]domain.Order, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	orders := []domain.Order{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.StoreResult("query", colOrders, len(orders), err)
			return nil, fmt.Errorf("query orders: %w", err)
		}
		var o domain.Order
		if err := doc.DataTo(&o); err != nil {
			logger.Warn("Skipping malformed order document", "id", doc.Ref.ID, "error", err)
			continue
		}
		o.ID = doc.Ref.ID
		orders = append(orders, o)
	}

	sortByCreatedAtDesc(orders, func(o domain.Order) int64 { return o.CreatedAt })
	logger.StoreResult("query", colOrders, len(orders), nil)
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, st domain.OrderStatus) error {
	logger.StoreCall("update", colOrders, "id", id, "status", st)
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: st},
		{Path: "updatedAt", Value: nowMillis()},
	})
	if err != nil {
		return fmt.Errorf("update order status: %w", mapNotFound(err))
	}
	return nil
}

func (r *orderRepository) UpdateTracking(ctx context.Context, id, trackingNumber, carrier string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "trackingNumber", Value: trackingNumber},
		{Path: "carrier", Value: carrier},
		{Path: "status", Value: domain.OrderStatusShipped},
		{Path: "updatedAt", Value: nowMillis()},
	})
	if err != nil {
		return fmt.Errorf("update order tracking: %w", mapNotFound(err))
	}
	return nil
}
