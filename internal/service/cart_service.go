// internal/service/cart_service.go
package service

import (
	"context"

	"bloomshop/internal/domain"
)

// CartService defines the interface for the cart and purchase endpoints.
// The whole surface is mocked: AddItem and Checkout accept input without
// touching any store, and the listing calls return fixed payloads. In
// particular, Checkout does not transfer anything into the purchase
// store.
type CartService interface {
	AddItem(ctx context.Context, flowerID int) error
	ListItems(ctx context.Context) ([]domain.CartItem, error)
	Checkout(ctx context.Context) error
	ListPurchased(ctx context.Context) ([]domain.PurchasedItem, error)
}

// cartService implements the CartService interface. It deliberately
// holds no repository: there is no cart state anywhere in the process.
type cartService struct{}

// NewCartService creates a new instance of CartService.
func NewCartService() CartService {
	return &cartService{}
}

// AddItem accepts the flower id and discards it.
func (s *cartService) AddItem(ctx context.Context, flowerID int) error {
	return nil
}

// ListItems returns the fixed cart listing, independent of any prior
// AddItem calls.
func (s *cartService) ListItems(ctx context.Context) ([]domain.CartItem, error) {
	return []domain.CartItem{
		{ID: "flower1", Name: "Rose", Price: 10.0},
		{ID: "flower2", Name: "Tulip", Price: 5.0},
	}, nil
}

// Checkout acknowledges the purchase without recording anything.
func (s *cartService) Checkout(ctx context.Context) error {
	return nil
}

// ListPurchased returns the fixed purchase listing, independent of the
// purchase store's contents.
func (s *cartService) ListPurchased(ctx context.Context) ([]domain.PurchasedItem, error) {
	return []domain.PurchasedItem{
		{Name: "Rose", Price: 10.0},
		{Name: "Tulip", Price: 5.0},
	}, nil
}
