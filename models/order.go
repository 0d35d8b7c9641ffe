package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the shop
	OrderStatusCompleted OrderStatus = "completed" // delivered and paid
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a submitted customer order. It is created once by the checkout
// flow and mutated only by the dashboard; the customer flow never reads it
// back.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerPhone   string      `gorm:"not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"not null" json:"customer_address"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	Subtotal        float64     `json:"subtotal"`
	ShippingFee     float64     `json:"shipping_fee"`
	Total           float64     `json:"total"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Notes           string      `json:"notes,omitempty"`
	OrderDate       time.Time   `json:"order_date"`
	CreatedAt       time.Time   `json:"created_at"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
