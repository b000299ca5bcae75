// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle label of an order. The set is flat: any status
// may move to any other status, matching the storefront's fulfilment process.
type OrderStatus string

// The five recognized order statuses.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the recognized statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a purchase record owned by the ordering user. TotalPrice is a price
// snapshot: computed as product price times quantity at write time and persisted,
// so later product price changes never alter historical orders.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"product_id"`
	UserID     uuid.UUID       `json:"user_id"`
	Quantity   int             `json:"quantity"`    // Strictly positive.
	TotalPrice decimal.Decimal `json:"total_price"` // Persisted snapshot, never derived on read.
	Status     OrderStatus     `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`

	Product *Product `json:"product,omitempty"` // Populated on reads.
}
