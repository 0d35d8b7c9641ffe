package checkout

import "github.com/cowebsLB/mounifull/models"

// Single authoritative shipping policy: flat $5 below $50, free at or
// above. An older checkout path charged 9.99; that number is dead.
const (
	FreeShippingThreshold = 50.0
	FlatShippingFee       = 5.0
)

// Subtotal sums line totals across the cart.
func Subtotal(items []models.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

// ShippingFee returns the delivery fee for a given subtotal.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// TotalWithShipping is subtotal plus its shipping fee.
func TotalWithShipping(subtotal float64) float64 {
	return subtotal + ShippingFee(subtotal)
}
