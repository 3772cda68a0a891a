// internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository"
)

// CatalogService defines the interface for flower catalog logic.
type CatalogService interface {
	AddFlower(ctx context.Context, flower domain.Flower) (string, error)
	ListFlowers(ctx context.Context) ([]domain.Flower, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	flowerRepo repository.FlowerRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(flowerRepo repository.FlowerRepository) CatalogService {
	return &catalogService{flowerRepo: flowerRepo}
}

// AddFlower stores the flower and returns its generated identifier.
func (s *catalogService) AddFlower(ctx context.Context, flower domain.Flower) (string, error) {
	id, err := s.flowerRepo.SaveFlower(ctx, flower)
	if err != nil {
		return "", fmt.Errorf("add flower: failed to save flower: %w", err)
	}
	return id, nil
}

// ListFlowers returns the full catalog in insertion order.
func (s *catalogService) ListFlowers(ctx context.Context) ([]domain.Flower, error) {
	flowers, err := s.flowerRepo.ListFlowers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flowers: failed to list flowers: %w", err)
	}
	return flowers, nil
}
