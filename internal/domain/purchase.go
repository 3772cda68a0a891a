// internal/domain/purchase.go
package domain

// Purchase links a user to a flower they bought. Records are append-only
// and immutable; their identity is their position in the store.
type Purchase struct {
	UserID   string `json:"user_id"`
	FlowerID string `json:"flower_id"`
}

// NewPurchase creates a new Purchase instance.
func NewPurchase(userID, flowerID string) *Purchase {
	return &Purchase{
		UserID:   userID,
		FlowerID: flowerID,
	}
}
