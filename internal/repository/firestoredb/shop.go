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

type shopRepository struct {
	client *firestore.Client
}

func NewShopRepository(client *firestore.Client) repository.ShopRepository {
	return &shopRepository{client: client}
}

func (r *shopRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colShops)
}

func (r *shopRepository) Create(ctx context.Context, s *domain.Shop) (string, error) {
	now := nowMillis()
	s.CreatedAt = now
	s.UpdatedAt = now
	s.IsActive = true

	logger.StoreCall("create", colShops, "owner_id", s.OwnerID)
	ref, _, err := r.collection().Add(ctx, s)
	if err != nil {
		return "", fmt.Errorf("create shop: %w", err)
	}
	s.ID = ref.ID
	return ref.ID, nil
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	var s domain.Shop
	if err := doc.DataTo(&s); err != nil {
		return nil, fmt.Errorf("decode shop %s: %w", id, err)
	}
	s.ID = doc.Ref.ID
	return &s, nil
}

func (r *shopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	return r.list(ctx, r.collection().Query)
}

func (r *shopRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error) {
	return r.list(ctx, r.collection().Where("ownerId", "==", ownerID))
}

func (r *shopRepository) list(ctx context.Context, q firestore.Query) ([]domain.Shop, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	shops := []domain.Shop{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.StoreResult("query", colShops, len(shops), err)
			return nil, fmt.Errorf("query shops: %w", err)
		}
		var s domain.Shop
		if err := doc.DataTo(&s); err != nil {
			logger.Warn("Skipping malformed shop document", "id", doc.Ref.ID, "error", err)
			continue
		}
		s.ID = doc.Ref.ID
		shops = append(shops, s)
	}

	sortByCreatedAtDesc(shops, func(s domain.Shop) int64 { return s.CreatedAt })
	logger.StoreResult("query", colShops, len(shops), nil)
	return shops, nil
}

func (r *shopRepository) Update(ctx context.Context, s *domain.Shop) error {
	s.UpdatedAt = nowMillis()
	_, err := r.collection().Doc(s.ID).Set(ctx, s)
	if err != nil {
		return fmt.Errorf("update shop: %w", mapNotFound(err))
	}
	return nil
}

func (r *shopRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete shop: %w", mapNotFound(err))
	}
	return nil
}
