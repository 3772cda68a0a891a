// internal/domain/flower.go
package domain

// Flower represents a catalog entry. Its identifier is generated by the
// store at save time and is not part of the wire representation.
type Flower struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"` // Expected non-negative, not validated
}

// NewFlower creates a new Flower instance.
func NewFlower(name string, price float64) *Flower {
	return &Flower{
		Name:  name,
		Price: price,
	}
}
