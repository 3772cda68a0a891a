// internal/repository/memory/flower_memory.go
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository"
)

// FlowerRepository implements repository.FlowerRepository on a map keyed
// by generated identifier. A separate id slice keeps listing order
// insertion-stable.
type FlowerRepository struct {
	mu      sync.RWMutex
	ids     []string
	flowers map[string]domain.Flower
}

// NewFlowerRepository creates a new in-memory flower repository.
func NewFlowerRepository() repository.FlowerRepository {
	return &FlowerRepository{flowers: make(map[string]domain.Flower)}
}

// SaveFlower stores the flower under a fresh uuid and returns the id.
// Identifiers are never reused.
func (r *FlowerRepository) SaveFlower(ctx context.Context, flower domain.Flower) (string, error) {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
	r.flowers[id] = flower
	return id, nil
}

// ListFlowers returns all stored flowers in insertion order.
func (r *FlowerRepository) ListFlowers(ctx context.Context) ([]domain.Flower, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Flower, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.flowers[id])
	}
	return out, nil
}
