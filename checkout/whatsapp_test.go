package checkout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cowebsLB/mounifull/models"
)

func TestBuildOrderMessage(t *testing.T) {
	form := OrderForm{FullName: "Rami Khalil", Phone: "+96170123456", Address: "Hamra Street, Beirut"}
	items := []models.CartItem{
		{ProductID: 1, Name: "Pure Honey", Price: 18, Quantity: 2},
		{ProductID: 2, Name: "Kishik 500g (bag)", Price: 14, Quantity: 1},
	}

	msg := BuildOrderMessage(form, items, 50, 0, 50)

	assert.Contains(t, msg, "*New Order from Mounifull Website*")
	assert.Contains(t, msg, "Name: Rami Khalil")
	assert.Contains(t, msg, "1. Pure Honey x2 - $36.00")
	assert.Contains(t, msg, "2. Kishik 500g (bag) x1 - $14.00")
	assert.Contains(t, msg, "Subtotal: $50.00")
	assert.Contains(t, msg, "Shipping: Free")
	assert.Contains(t, msg, "*Total: $50.00*")
}

func TestBuildOrderMessageFlatFee(t *testing.T) {
	form := OrderForm{FullName: "Rami", Phone: "+96170123456", Address: "Beirut"}
	items := []models.CartItem{{ProductID: 1, Name: "Labneh", Price: 6, Quantity: 1}}

	msg := BuildOrderMessage(form, items, 6, 5, 11)
	assert.Contains(t, msg, "Shipping: $5.00")
	assert.Contains(t, msg, "*Total: $11.00*")
}

func TestBuildOrderMessageMissingFields(t *testing.T) {
	msg := BuildOrderMessage(OrderForm{FullName: "Rami"}, nil, 0, 5, 5)
	assert.Contains(t, msg, "Phone: Not provided")
	assert.Contains(t, msg, "Address: Not provided")
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", 2000)
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("b", 2001)
	got := Truncate(long)
	assert.True(t, strings.HasSuffix(got, truncationMark))
	assert.Equal(t, 1500+utf8.RuneCountInString(truncationMark), utf8.RuneCountInString(got))
}

func TestTruncateCountsRunesNotBytes(t *testing.T) {
	// 1800 two-byte runes exceed 2000 bytes but stay under the rune cap
	msg := strings.Repeat("ش", 1800)
	assert.Equal(t, msg, Truncate(msg))
}

func TestOrderLink(t *testing.T) {
	link := OrderLink("81796383", "Hello order *1*")
	require.True(t, strings.HasPrefix(link, "https://wa.me/81796383?text="))
	assert.NotContains(t, link, "+", "spaces must encode as %20, not +")
	assert.Contains(t, link, "Hello%20order%20%2A1%2A")
}
