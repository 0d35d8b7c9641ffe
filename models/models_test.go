package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameFallbacks(t *testing.T) {
	both := Product{NameEn: "Honey", NameAr: "عسل"}
	assert.Equal(t, "Honey", both.DisplayName("en"))
	assert.Equal(t, "عسل", both.DisplayName("ar"))

	enOnly := Product{NameEn: "Honey"}
	assert.Equal(t, "Honey", enOnly.DisplayName("ar"))

	arOnly := Product{NameAr: "عسل"}
	assert.Equal(t, "عسل", arOnly.DisplayName("en"))
}

func TestListedAtPrefersDateAdded(t *testing.T) {
	added := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, added, Product{DateAdded: added, CreatedAt: created}.ListedAt())
	assert.Equal(t, created, Product{CreatedAt: created}.ListedAt())
}

func TestCartItemKey(t *testing.T) {
	assert.Equal(t, "7", CartItem{ProductID: 7}.Key())
	assert.Equal(t, "7-500g-jar", CartItem{ProductID: 7, UniqueID: "7-500g-jar"}.Key())
}

func TestCartItemSubtotal(t *testing.T) {
	assert.Equal(t, 36.0, CartItem{Price: 18, Quantity: 2}.Subtotal())
}
