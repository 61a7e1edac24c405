package service

import (
	"context"
	"errors"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

type shopService struct {
	shopRepo repository.ShopRepository
}

func NewShopService(shopRepo repository.ShopRepository) ShopService {
	return &shopService{shopRepo: shopRepo}
}

func (s *shopService) CreateShop(ctx context.Context, shop *domain.Shop) (string, error) {
	if shop.Name == "" {
		return "", errors.New("shop name is required")
	}
	if shop.OwnerID == "" {
		return "", errors.New("shop owner is required")
	}
	shop.IsActive = true
	id, err := s.shopRepo.Create(ctx, shop)
	if err != nil {
		return "", err
	}
	logger.WithService("shop").Info("shop created", "shop_id", id, "owner_id", shop.OwnerID)
	return id, nil
}

func (s *shopService) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	return s.shopRepo.GetByID(ctx, id)
}

func (s *shopService) ListShops(ctx context.Context) ([]domain.Shop, error) {
	return s.shopRepo.List(ctx)
}

func (s *shopService) ListShopsByOwner(ctx context.Context, ownerID string) ([]domain.Shop, error) {
	return s.shopRepo.ListByOwner(ctx, ownerID)
}

func (s *shopService) UpdateShop(ctx context.Context, ownerID string, shop *domain.Shop) error {
	existing, err := s.shopRepo.GetByID(ctx, shop.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	// Ownership and creation time are immutable.
	shop.OwnerID = existing.OwnerID
	shop.CreatedAt = existing.CreatedAt
	return s.shopRepo.Update(ctx, shop)
}

func (s *shopService) SetShopActive(ctx context.Context, ownerID, shopID string, active bool) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return err
	}
	if shop.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	shop.IsActive = active
	return s.shopRepo.Update(ctx, shop)
}

func (s *shopService) DeleteShop(ctx context.Context, ownerID, shopID string) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return err
	}
	if shop.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	logger.WithService("shop").Info("shop deleted", "shop_id", shopID, "owner_id", ownerID)
	return s.shopRepo.Delete(ctx, shopID)
}
