// internal/repository/flower_repo.go
package repository

import (
	"context"

	"bloomshop/internal/domain"
)

// FlowerRepository defines the interface for catalog data operations.
type FlowerRepository interface {
	// SaveFlower stores the flower under a freshly generated identifier
	// and returns that identifier. Name and price are not validated.
	SaveFlower(ctx context.Context, flower domain.Flower) (string, error)
	// ListFlowers returns all stored flowers in insertion order.
	ListFlowers(ctx context.Context) ([]domain.Flower, error)
}
