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

type productRepository struct {
	client *firestore.Client
}

func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colProducts)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) (string, error) {
	now := nowMillis()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.IsActive = true
	if p.Currency == "" {
		p.Currency = "USD"
	}

	logger.StoreCall("create", colProducts, "shop_id", p.ShopID)
	ref, _, err := r.collection().Add(ctx, p)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	p.ID = ref.ID
	return ref.ID, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	var p domain.Product
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *productRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Product, error) {
	iter := r.collection().Where("shopId", "==", shopID).Documents(ctx)
	defer iter.Stop()

	products := []domain.Product{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.StoreResult("query", colProducts, len(products), err)
			return nil, fmt.Errorf("query products: %w", err)
		}
		var p domain.Product
		if err := doc.DataTo(&p); err != nil {
			logger.Warn("Skipping malformed product document", "id", doc.Ref.ID, "error", err)
			continue
		}
		p.ID = doc.Ref.ID
		products = append(products, p)
	}

	sortByCreatedAtDesc(products, func(p domain.Product) int64 { return p.CreatedAt })
	logger.StoreResult("query", colProducts, len(products), nil)
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	p.UpdatedAt = nowMillis()
	_, err := r.collection().Doc(p.ID).Set(ctx, p)
	if err != nil {
		return fmt.Errorf("update product: %w", mapNotFound(err))
	}
	return nil
}

func (r *productRepository) UpdateStock(ctx context.Context, id string, quantity int) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "stockQuantity", Value: quantity},
		{Path: "inStock", Value: quantity > 0},
		{Path: "updatedAt", Value: nowMillis()},
	})
	if err != nil {
		return fmt.Errorf("update product stock: %w", mapNotFound(err))
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete product: %w", mapNotFound(err))
	}
	return nil
}
