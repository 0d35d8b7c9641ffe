package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cowebsLB/mounifull/models"
)

func TestShippingFee(t *testing.T) {
	assert.Equal(t, 5.0, ShippingFee(0))
	assert.Equal(t, 5.0, ShippingFee(49.99))
	assert.Equal(t, 0.0, ShippingFee(50))
	assert.Equal(t, 0.0, ShippingFee(120))
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, Price: 18, Quantity: 2},
		{ProductID: 2, Price: 7, Quantity: 1},
	}
	assert.Equal(t, 43.0, Subtotal(items))
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestTotalWithShipping(t *testing.T) {
	// $38 cart pays the flat fee
	assert.Equal(t, 43.0, TotalWithShipping(38))
	// At the threshold shipping is free
	assert.Equal(t, 50.0, TotalWithShipping(50))
}
