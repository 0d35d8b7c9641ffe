package models

import "strconv"

// CartItem is one line of a session cart. The JSON tags are the persisted
// cart record format: a plain array of these objects stored under the
// "mounifull.cart" key prefix.
//
// Name, price and image are denormalized at add-time and are not re-synced
// to later catalog changes.
type CartItem struct {
	ProductID uint    `json:"id"`
	UniqueID  string  `json:"uniqueId,omitempty"` // set for variant adds: "<id>-<weight>-<packaging>"
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Key identifies the line within its cart: the variant composite when
// present, otherwise the product id.
func (it CartItem) Key() string {
	if it.UniqueID != "" {
		return it.UniqueID
	}
	return strconv.FormatUint(uint64(it.ProductID), 10)
}

// Subtotal is the line total.
func (it CartItem) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}
