// internal/repository/purchase_repo.go
package repository

import (
	"context"

	"bloomshop/internal/domain"
)

// PurchaseRepository defines the interface for purchase data operations.
// Records are appended without deduplication and without checking that
// the referenced user or flower exists.
type PurchaseRepository interface {
	// SavePurchase appends the record to the store.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error
	// ListPurchases returns the records whose UserID equals userID,
	// preserving append order.
	ListPurchases(ctx context.Context, userID string) ([]domain.Purchase, error)
}
