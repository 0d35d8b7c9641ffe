package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cowebsLB/mounifull/models"
)

// Key prefixes match the records the storefront has always written, so a
// migrated store keeps reading existing carts.
const (
	cartKeyPrefix       = "mounifull.cart"
	addressKeyPrefix    = "mounifull.address"
	savedOrderKeyPrefix = "mounifull.savedOrder"
)

// Subscriber is notified after every cart write with the session and its
// new badge count. This is the one cross-controller notification mechanism:
// anything that must react to cart changes registers here instead of
// polling.
type Subscriber func(sessionID string, badgeCount int)

// Store owns the persisted cart (plus the saved address and saved-order
// snapshot) for each session. Every controller re-reads before acting, and
// writes are whole-cart overwrites (last writer wins).
type Store struct {
	kv KV

	mu   sync.RWMutex
	subs []Subscriber
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Subscribe registers fn for cart-changed notifications.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Get returns the session's line items. Absent, unreadable or malformed
// storage yields an empty cart, never an error.
func (s *Store) Get(ctx context.Context, sessionID string) []models.CartItem {
	raw, err := s.kv.Get(ctx, cartKey(sessionID))
	if err != nil {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Str("session_id", sessionID).Err(err).Msg("malformed cart record, treating as empty")
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// Set overwrites the stored cart and notifies subscribers with the new
// badge count.
func (s *Store) Set(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, cartKey(sessionID), string(data)); err != nil {
		return err
	}
	s.notify(sessionID, BadgeCount(items))
	return nil
}

// Clear drops the session's cart entirely.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, cartKey(sessionID)); err != nil {
		return err
	}
	s.notify(sessionID, 0)
	return nil
}

// BadgeCount sums quantities. A missing or non-positive quantity counts as
// 1: old stored records predate the quantity field.
func BadgeCount(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		total += q
	}
	return total
}

// AddProduct merges a catalog-page add into the cart: same product id
// (non-variant line) increments quantity, otherwise a new line is appended
// with the display fields denormalized at add-time.
func (s *Store) AddProduct(ctx context.Context, sessionID string, p models.Product, qty int) ([]models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	items := s.Get(ctx, sessionID)
	merged := false
	for i := range items {
		if items[i].ProductID == p.ID && items[i].UniqueID == "" {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ProductID: p.ID,
			Name:      p.DisplayName("en"),
			Price:     p.Price,
			Image:     p.ImageURL,
			Quantity:  qty,
		})
	}
	return items, s.Set(ctx, sessionID, items)
}

// AddVariant merges a product-page add keyed by the id+weight+packaging
// composite, so the same base product can sit in the cart as several
// independent variant lines.
func (s *Store) AddVariant(ctx context.Context, sessionID string, v models.Product, qty int) ([]models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	uniqueID := VariantID(v)
	items := s.Get(ctx, sessionID)
	merged := false
	for i := range items {
		if items[i].UniqueID == uniqueID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			ProductID: v.ID,
			UniqueID:  uniqueID,
			Name:      variantName(v),
			Price:     v.Price,
			Image:     v.ImageURL,
			Quantity:  qty,
		})
	}
	return items, s.Set(ctx, sessionID, items)
}

// SetQuantity sets a line's quantity by key (uniqueId or product id).
// Quantity <= 0 removes the line; a zero-quantity line is never persisted.
func (s *Store) SetQuantity(ctx context.Context, sessionID, key string, qty int) ([]models.CartItem, error) {
	items := s.Get(ctx, sessionID)
	for i := range items {
		if items[i].Key() == key {
			if qty <= 0 {
				items = append(items[:i], items[i+1:]...)
			} else {
				items[i].Quantity = qty
			}
			return items, s.Set(ctx, sessionID, items)
		}
	}
	return items, nil
}

// Adjust shifts a line's quantity by delta, removing it at zero or below.
func (s *Store) Adjust(ctx context.Context, sessionID, key string, delta int) ([]models.CartItem, error) {
	items := s.Get(ctx, sessionID)
	for i := range items {
		if items[i].Key() == key {
			return s.SetQuantity(ctx, sessionID, key, items[i].Quantity+delta)
		}
	}
	return items, nil
}

// Remove deletes a line by key.
func (s *Store) Remove(ctx context.Context, sessionID, key string) ([]models.CartItem, error) {
	items := s.Get(ctx, sessionID)
	for i := range items {
		if items[i].Key() == key {
			items = append(items[:i], items[i+1:]...)
			return items, s.Set(ctx, sessionID, items)
		}
	}
	return items, nil
}

func (s *Store) notify(sessionID string, badge int) {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(sessionID, badge)
	}
}

// VariantID builds the composite line key for a variant add.
func VariantID(v models.Product) string {
	weight := v.Weight
	if weight == "" {
		weight = "default"
	}
	packaging := v.Packaging
	if packaging == "" {
		packaging = "default"
	}
	return fmt.Sprintf("%d-%s-%s", v.ID, weight, packaging)
}

func variantName(v models.Product) string {
	name := v.DisplayName("en")
	if v.Weight != "" {
		base := name
		if stripped := trimWeight(name, v.Weight); stripped != "" {
			base = stripped
		}
		name = base + " " + v.Weight
	}
	if v.Packaging != "" {
		name += " (" + v.Packaging + ")"
	}
	return name
}

// trimWeight drops a trailing weight label so "Kishik 500g" + weight
// "500g" doesn't render as "Kishik 500g 500g".
func trimWeight(name, weight string) string {
	if name != weight && strings.HasSuffix(name, weight) {
		return strings.TrimRight(strings.TrimSuffix(name, weight), " ")
	}
	return ""
}

// --- saved address -------------------------------------------------------

// GetAddress returns the saved checkout form, empty when absent or
// malformed.
func (s *Store) GetAddress(ctx context.Context, sessionID string) models.Address {
	raw, err := s.kv.Get(ctx, addressKey(sessionID))
	if err != nil {
		return models.Address{}
	}
	var addr models.Address
	if err := json.Unmarshal([]byte(raw), &addr); err != nil || addr == nil {
		return models.Address{}
	}
	return addr
}

// SetAddress saves (overwrites) the checkout form for prefilling.
func (s *Store) SetAddress(ctx context.Context, sessionID string, addr models.Address) error {
	data, err := json.Marshal(addr)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, addressKey(sessionID), string(data))
}

// --- saved-order snapshot ------------------------------------------------

// SavedOrder is the "save for later" snapshot of a cart.
type SavedOrder struct {
	Cart      []models.CartItem `json:"cart"`
	Timestamp time.Time         `json:"timestamp"`
	Total     float64           `json:"total"`
}

func (s *Store) SaveOrder(ctx context.Context, sessionID string, snapshot SavedOrder) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, savedOrderKey(sessionID), string(data))
}

func (s *Store) GetSavedOrder(ctx context.Context, sessionID string) (SavedOrder, bool) {
	raw, err := s.kv.Get(ctx, savedOrderKey(sessionID))
	if err != nil {
		return SavedOrder{}, false
	}
	var snapshot SavedOrder
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return SavedOrder{}, false
	}
	return snapshot, true
}

func cartKey(sessionID string) string       { return cartKeyPrefix + ":" + sessionID }
func addressKey(sessionID string) string    { return addressKeyPrefix + ":" + sessionID }
func savedOrderKey(sessionID string) string { return savedOrderKeyPrefix + ":" + sessionID }
