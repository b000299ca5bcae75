// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is absent from the caller-scoped
// set. Non-owned rows behave exactly like absent rows.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence. Every lookup is
// scoped to the owning user; there is no unscoped read path.
type OrderRepository interface {
	// FindByUser retrieves the orders of the given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByIDForUser retrieves a single order only if it is owned by the given user.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// Create persists a new order with its precomputed total price.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an order, constrained to rows owned by order.UserID.
	Update(ctx context.Context, order *entity.Order) error

	// DeleteForUser removes an order only if it is owned by the given user.
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
}
