// internal/domain/cart.go
package domain

// CartItem is an entry of the mocked cart listing. There is no cart
// store; the items returned never change.
type CartItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PurchasedItem is an entry of the mocked purchase listing.
type PurchasedItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
