package service

import (
	"context"
	"errors"
	"fmt"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/repository"
)

// catalogService manages the products and services a shop offers. Every
// mutation verifies that the caller owns the parent shop.
type catalogService struct {
	productRepo repository.ProductRepository
	serviceRepo repository.ServiceRepository
	shopRepo    repository.ShopRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	serviceRepo repository.ServiceRepository,
	shopRepo repository.ShopRepository,
) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		serviceRepo: serviceRepo,
		shopRepo:    shopRepo,
	}
}

func (s *catalogService) checkShopOwner(ctx context.Context, ownerID, shopID string) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return fmt.Errorf("failed to load shop: %w", err)
	}
	if shop.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, ownerID string, product *domain.Product) (string, error) {
	if product.Name == "" {
		return "", errors.New("product name is required")
	}
	if product.Price < 0 {
		return "", errors.New("product price cannot be negative")
	}
	if err := s.checkShopOwner(ctx, ownerID, product.ShopID); err != nil {
		return "", err
	}
	product.OwnerID = ownerID
	product.IsActive = true
	product.InStock = product.StockQuantity > 0
	return s.productRepo.Create(ctx, product)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *catalogService) ListProductsByShop(ctx context.Context, shopID string) ([]domain.Product, error) {
	return s.productRepo.ListByShop(ctx, shopID)
}

func (s *catalogService) UpdateProduct(ctx context.Context, ownerID string, product *domain.Product) error {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	product.ShopID = existing.ShopID
	product.OwnerID = existing.OwnerID
	product.CreatedAt = existing.CreatedAt
	product.InStock = product.StockQuantity > 0
	return s.productRepo.Update(ctx, product)
}

func (s *catalogService) DeleteProduct(ctx context.Context, ownerID, productID string) error {
	existing, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	return s.productRepo.Delete(ctx, productID)
}

func (s *catalogService) CreateService(ctx context.Context, ownerID string, svc *domain.Service) (string, error) {
	if svc.Name == "" {
		return "", errors.New("service name is required")
	}
	if svc.BasePrice < 0 {
		return "", errors.New("service price cannot be negative")
	}
	if err := s.checkShopOwner(ctx, ownerID, svc.ShopID); err != nil {
		return "", err
	}
	svc.OwnerID = ownerID
	svc.IsActive = true
	return s.serviceRepo.Create(ctx, svc)
}

func (s *catalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *catalogService) ListServicesByShop(ctx context.Context, shopID string) ([]domain.Service, error) {
	return s.serviceRepo.ListByShop(ctx, shopID)
}

func (s *catalogService) UpdateService(ctx context.Context, ownerID string, svc *domain.Service) error {
	existing, err := s.serviceRepo.GetByID(ctx, svc.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	svc.ShopID = existing.ShopID
	svc.OwnerID = existing.OwnerID
	svc.CreatedAt = existing.CreatedAt
	return s.serviceRepo.Update(ctx, svc)
}

func (s *catalogService) DeleteService(ctx context.Context, ownerID, serviceID string) error {
	existing, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	return s.serviceRepo.Delete(ctx, serviceID)
}
