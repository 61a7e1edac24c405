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

type serviceRepository struct {
	client *firestore.Client
}

func NewServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &serviceRepository{client: client}
}

func (r *serviceRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colServices)
}

func (r *serviceRepository) Create(ctx context.Context, s *domain.Service) (string, error) {
	now := nowMillis()
	s.CreatedAt = now
	s.UpdatedAt = now
	s.IsActive = true
	if s.Currency == "" {
		s.Currency = "USD"
	}
	if s.EstimatedDuration == 0 {
		s.EstimatedDuration = 60
	}

	logger.StoreCall("create", colServices, "shop_id", s.ShopID)
	ref, _, err := r.collection().Add(ctx, s)
	if err != nil {
		return "", fmt.Errorf("create service: %w", err)
	}
	s.ID = ref.ID
	return ref.ID, nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	var s domain.Service
	if err := doc.DataTo(&s); err != nil {
		return nil, fmt.Errorf("decode service %s: %w", id, err)
	}
	s.ID = doc.Ref.ID
	return &s, nil
}

func (r *serviceRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Service, error) {
	iter := r.collection().Where("shopId", "==", shopID).Documents(ctx)
	defer iter.Stop()

	services := []domain.Service{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.StoreResult("query", colServices, len(services), err)
			return nil, fmt.Errorf("query services: %w", err)
		}
		var s domain.Service
		if err := doc.DataTo(&s); err != nil {
			logger.Warn("Skipping malformed service document", "id", doc.Ref.ID, "error", err)
			continue
		}
		s.ID = doc.Ref.ID
		services = append(services, s)
	}

	sortByCreatedAtDesc(services, func(s domain.Service) int64 { return s.CreatedAt })
	logger.StoreResult("query", colServices, len(services), nil)
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, s *domain.Service) error {
	s.UpdatedAt = nowMillis()
	_, err := r.collection().Doc(s.ID).Set(ctx, s)
	if err != nil {
		return fmt.Errorf("update service: %w", mapNotFound(err))
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete service: %w", mapNotFound(err))
	}
	return nil
}
