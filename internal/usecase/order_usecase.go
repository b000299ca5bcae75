package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place an order. The total
// price is never accepted from the caller; it is computed server-side, and
// new orders always start pending.
type CreateOrderInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// UpdateOrderInput carries a partial order update. nil fields are left
// untouched; the total price is recomputed on every update.
type UpdateOrderInput struct {
	ProductID *uuid.UUID
	Quantity  *int
	Status    *string
}

// OrderUsecase defines the interface for order management. All operations are
// scoped to the calling user.
type OrderUsecase interface {
	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns a single order owned by the user.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// CreateOrder places an order, snapshotting the product price into the total.
	CreateOrder(ctx context.Context, userID uuid.UUID, input CreateOrderInput) (*entity.Order, error)

	// UpdateOrder applies a partial update to an order owned by the user.
	UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, input UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order owned by the user.
	DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error
}
