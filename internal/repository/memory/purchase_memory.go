// internal/repository/memory/purchase_memory.go
package memory

import (
	"context"
	"sync"

	"bloomshop/internal/domain"
	"bloomshop/internal/repository"
)

// PurchaseRepository implements repository.PurchaseRepository on an
// append-only slice.
type PurchaseRepository struct {
	mu        sync.RWMutex
	purchases []domain.Purchase
}

// NewPurchaseRepository creates a new in-memory purchase repository.
func NewPurchaseRepository() repository.PurchaseRepository {
	return &PurchaseRepository{}
}

// SavePurchase appends the record. No deduplication and no check that
// the referenced user or flower exists.
func (r *PurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, purchase)
	return nil
}

// ListPurchases returns the records for the given user in append order.
func (r *PurchaseRepository) ListPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Purchase, 0)
	for _, p := range r.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
